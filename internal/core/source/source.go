package source

import (
	"context"

	"ai-kitchen/internal/pkg/common"
)

// Outcome 資料來源查詢結果狀態
// 協調器依此決定回退或中止：NotFound 換下一個來源，Failed 直接上拋
type Outcome int

const (
	// OutcomeFound 成功取得食譜
	OutcomeFound Outcome = iota
	// OutcomeNotFound 此來源查無資料（含被吞掉的暫時性失敗）
	OutcomeNotFound
	// OutcomeFailed 硬錯誤，不應再嘗試其他來源
	OutcomeFailed
)

// Source 定義食譜資料來源介面
type Source interface {
	// Name 來源標籤，同時作為合成 ID 的前綴
	Name() string

	// Fetch 以菜名查詢候選食譜
	// Outcome 為 Failed 時 err 必不為 nil，其餘情況 err 為 nil
	Fetch(ctx context.Context, dishName string) (*common.RecipeRecord, Outcome, error)
}
