package service

import (
	"errors"
	"testing"

	"github.com/minishop/internal/config"
)

func TestValidatePassword(t *testing.T) {
	strict := config.PasswordPolicyConfig{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}
	cases := []struct {
		name     string
		policy   config.PasswordPolicyConfig
		password string
		wantErr  bool
	}{
		{name: "empty", policy: config.PasswordPolicyConfig{}, password: "", wantErr: true},
		{name: "no policy", policy: config.PasswordPolicyConfig{}, password: "x", wantErr: false},
		{name: "too short", policy: strict, password: "Ab1!", wantErr: true},
		{name: "missing upper", policy: strict, password: "abcdef1!", wantErr: true},
		{name: "missing number", policy: strict, password: "Abcdefg!", wantErr: true},
		{name: "missing special", policy: strict, password: "Abcdefg1", wantErr: true},
		{name: "strong", policy: strict, password: "Abcdef1!", wantErr: false},
		{name: "runes counted", policy: config.PasswordPolicyConfig{MinLength: 3}, password: "密码好", wantErr: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.policy, tc.password)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Fatalf("password errors should be validation errors, got %v", err)
			}
		})
	}
}

func TestPasswordPolicyErrorMatchesWeakPassword(t *testing.T) {
	err := validatePassword(config.PasswordPolicyConfig{MinLength: 10}, "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("policy error should match ErrWeakPassword, got %v", err)
	}
	if err.Error() != "password must be at least 10 characters" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
