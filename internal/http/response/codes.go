package response

// 业务状态码，非 0 时与 HTTP 状态码一致
const (
	CodeOK                 = 0
	CodeBadRequest         = 400
	CodeUnauthorized       = 401
	CodeNotFound           = 404
	CodeConflict           = 409
	CodeTooManyRequests    = 429
	CodeInternal           = 500
	CodeServiceUnavailable = 503
)

// 错误类别，写入错误响应的 error 字段
const (
	KindValidation         = "validation_error"
	KindUnauthorized       = "unauthorized"
	KindNotFound           = "not_found"
	KindConflict           = "conflict"
	KindTooManyRequests    = "too_many_requests"
	KindTransactionFailure = "transaction_failure"
	KindUnavailable        = "service_unavailable"
	KindInternal           = "internal_error"
)

// KindForCode 按状态码推导错误类别
func KindForCode(code int) string {
	switch code {
	case CodeBadRequest:
		return KindValidation
	case CodeUnauthorized:
		return KindUnauthorized
	case CodeNotFound:
		return KindNotFound
	case CodeConflict:
		return KindConflict
	case CodeTooManyRequests:
		return KindTooManyRequests
	case CodeServiceUnavailable:
		return KindUnavailable
	default:
		return KindInternal
	}
}
