package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As 鏈
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 取出錯誤鏈中的 CustomError；找不到時回傳 nil
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidInput    = "INVALID_INPUT"     // 400
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"       // 500
	ErrCodeUpstreamParseError = "UPSTREAM_PARSE_ERROR" // 502
	ErrCodeNotConfigured      = "NOT_CONFIGURED"       // 503
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"  // 503
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)

	// 業務錯誤
	ErrCacheFull     = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
)

// NewInvalidInputError 創建輸入驗證錯誤（使用者可修正）
func NewInvalidInputError(message string) *CustomError {
	return NewError(ErrCodeInvalidInput, message, http.StatusBadRequest, nil)
}

// NewNotFoundError 創建查無食譜錯誤，訊息需帶上原始菜名
func NewNotFoundError(dishName string) *CustomError {
	return NewError(ErrCodeNotFound,
		fmt.Sprintf("Could not find or generate recipe for '%s'. Please try a different dish.", dishName),
		http.StatusNotFound, nil)
}

// NewUpstreamParseError 創建上游解析錯誤，保留原始錯誤供日誌診斷
func NewUpstreamParseError(err error) *CustomError {
	return NewError(ErrCodeUpstreamParseError, "Failed to parse recipe data from AI", http.StatusBadGateway, err)
}

// NewNotConfiguredError 創建生成後端未配置錯誤
func NewNotConfiguredError(backend string) *CustomError {
	return NewError(ErrCodeNotConfigured,
		fmt.Sprintf("%s backend is not configured", backend),
		http.StatusServiceUnavailable, nil)
}
