package service

import (
	"fmt"
	"unicode"

	"github.com/minishop/internal/config"
)

type passwordPolicyError struct {
	msg string
}

func (e passwordPolicyError) Error() string {
	return e.msg
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword || target == ErrValidation
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{msg: fmt.Sprintf("password must be at least %d characters", policy.MinLength)}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return passwordPolicyError{msg: "password must contain an uppercase letter"}
	}
	if policy.RequireLower && !hasLower {
		return passwordPolicyError{msg: "password must contain a lowercase letter"}
	}
	if policy.RequireNumber && !hasNumber {
		return passwordPolicyError{msg: "password must contain a digit"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return passwordPolicyError{msg: "password must contain a special character"}
	}
	return nil
}
