package response

// AppError 统一错误包装
type AppError struct {
	Code    int
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误，kind 为空时按状态码推导
func WrapError(code int, kind, message string, err error) *AppError {
	if kind == "" {
		kind = KindForCode(code)
	}
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
