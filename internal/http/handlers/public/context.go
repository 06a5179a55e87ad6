package public

import (
	"github.com/minishop/internal/constants"
	handlershared "github.com/minishop/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, constants.ContextKeyUserID)
}

func parsePathUint(c *gin.Context, name string) (uint, bool) {
	return handlershared.ParseUintValue(c, name, c.Param(name))
}

func parseQueryUint(c *gin.Context, name string) (uint, bool) {
	return handlershared.ParseUintValue(c, name, c.Query(name))
}
