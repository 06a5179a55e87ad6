package public

import (
	"errors"

	handlershared "github.com/minishop/internal/http/handlers/shared"
	"github.com/minishop/internal/http/response"
	"github.com/minishop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	kind   string
}

// serviceErrorRules 按错误类别映射，顺序即优先级
var serviceErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, kind: response.KindValidation},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, kind: response.KindUnauthorized},
	{target: service.ErrNotFound, code: response.CodeNotFound, kind: response.KindNotFound},
	{target: service.ErrConflict, code: response.CodeConflict, kind: response.KindConflict},
	{target: service.ErrTransactionFailure, code: response.CodeInternal, kind: response.KindTransactionFailure},
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackMsg string) {
	for _, rule := range rules {
		if !errors.Is(err, rule.target) {
			continue
		}
		msg, ok := service.ErrorMessage(err)
		if !ok {
			msg = fallbackMsg
		}
		// 事务失败需要保留底层原因用于排查
		var cause error
		if rule.code >= response.CodeInternal {
			cause = err
		}
		handlershared.RespondError(c, rule.code, rule.kind, msg, cause)
		return
	}
	handlershared.RespondError(c, response.CodeInternal, response.KindInternal, fallbackMsg, err)
}

func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	respondWithMappedError(c, err, serviceErrorRules, fallbackMsg)
}

func respondBadRequest(c *gin.Context, msg string) {
	handlershared.RespondError(c, response.CodeBadRequest, response.KindValidation, msg, nil)
}
