package service

import "errors"

// 错误类别，处理器按类别映射响应码
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTransactionFailure = errors.New("transaction failure")
)

// serviceError 携带类别的业务错误
type serviceError struct {
	kind  error
	msg   string
	cause error
}

func newError(kind error, msg string) *serviceError {
	return &serviceError{kind: kind, msg: msg}
}

func (e *serviceError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *serviceError) Is(target error) bool {
	return target == e.kind
}

func (e *serviceError) Unwrap() error {
	return e.cause
}

// Message 面向调用方的错误描述，不含底层原因
func (e *serviceError) Message() string {
	return e.msg
}

func (e *serviceError) wrap(cause error) error {
	return &serviceError{kind: e.kind, msg: e.msg, cause: cause}
}

// 身份相关
var (
	ErrUsernameRequired   = newError(ErrValidation, "username is required")
	ErrUsernameInvalid    = newError(ErrValidation, "username must be 3 to 64 characters")
	ErrPasswordRequired   = newError(ErrValidation, "password is required")
	ErrWeakPassword       = newError(ErrValidation, "password does not satisfy the password policy")
	ErrUsernameExists     = newError(ErrConflict, "username already exists")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid username or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")
)

// 商品相关
var (
	ErrProductNameRequired = newError(ErrValidation, "product name is required")
	ErrProductNameTooLong  = newError(ErrValidation, "product name must be at most 200 characters")
	ErrProductPriceInvalid = newError(ErrValidation, "price must be a non-negative amount with at most 2 decimal places")
	ErrProductNotFound     = newError(ErrNotFound, "product not found")
)

// 购物车与订单相关
var (
	ErrUserIDInvalid       = newError(ErrValidation, "userId must be a positive integer")
	ErrCartQuantityInvalid = newError(ErrValidation, "quantity must be a positive integer")
	ErrCartProductInvalid  = newError(ErrValidation, "productId does not reference an existing product")
	ErrCartItemNotFound    = newError(ErrNotFound, "cart item not found")
	ErrCartChanged         = newError(ErrConflict, "cart changed during checkout, please retry")
	ErrCheckoutFailed      = newError(ErrTransactionFailure, "checkout transaction failed")
	ErrOrderNotFound       = newError(ErrNotFound, "order not found")
)

// ErrorMessage 提取业务错误的对外描述
func ErrorMessage(err error) (string, bool) {
	var svcErr *serviceError
	if errors.As(err, &svcErr) {
		return svcErr.Message(), true
	}
	var policyErr passwordPolicyError
	if errors.As(err, &policyErr) {
		return policyErr.Error(), true
	}
	return "", false
}
