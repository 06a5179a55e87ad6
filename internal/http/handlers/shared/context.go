package shared

import (
	"strconv"
	"strings"

	"github.com/minishop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint 从上下文读取 uint 值，缺失时返回 401。
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "", "unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeUnauthorized, "", "unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "", "invalid identity in context", nil)
		return 0, false
	}
}

// ParseUintValue 解析正整数参数，失败时返回 400。
func ParseUintValue(c *gin.Context, name, raw string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, "", name+" must be a positive integer", nil)
		return 0, false
	}
	return uint(value), true
}
