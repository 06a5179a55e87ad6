package public

import (
	handlershared "github.com/minishop/internal/http/handlers/shared"
	"github.com/minishop/internal/http/response"
	"github.com/minishop/internal/models"

	"github.com/gin-gonic/gin"
)

// Healthz 存活与依赖检查
func (h *Handler) Healthz(c *gin.Context) {
	ctx := c.Request.Context()
	if err := models.Ping(ctx, h.DB); err != nil {
		handlershared.RespondError(c, response.CodeServiceUnavailable, response.KindUnavailable, "database unavailable", err)
		return
	}
	if err := h.Cache.Ping(ctx); err != nil {
		handlershared.RespondError(c, response.CodeServiceUnavailable, response.KindUnavailable, "redis unavailable", err)
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
