package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// NormalizeName 正規化名稱：去除前後空白並轉小寫
// 快取鍵與營養表比對都使用同一套正規化
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Slugify 將菜名轉為合成鍵片段（小寫、空白轉連字號）
func Slugify(name string) string {
	return strings.ReplaceAll(NormalizeName(name), " ", "-")
}
