package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai-kitchen/internal/pkg/common"
)

// requestID 取得或產生請求追蹤 ID
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Header("X-Request-ID", id)
	}
	return id
}

// respondError 將服務層錯誤轉換為 HTTP 響應
func respondError(c *gin.Context, reqID string, err error) {
	if ce := common.AsCustomError(err); ce != nil {
		common.LogWarn("請求處理失敗",
			zap.String("request_id", reqID),
			zap.String("code", ce.Code),
			zap.Int("status", ce.Status),
			zap.Error(err),
		)
		c.JSON(ce.Status, gin.H{"error": ce.Message})
		return
	}
	common.LogError("請求處理發生未預期錯誤",
		zap.String("request_id", reqID),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
