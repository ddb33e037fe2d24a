package validation

import (
	"strings"
	"testing"
)

type signUp struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateStruct_OK(t *testing.T) {
	if err := ValidateStruct(signUp{Email: "a@b.co", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(signUp{Email: "nope", Password: "123"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("missing email message: %s", msg)
	}
	if !strings.Contains(msg, "password must be at least 6") {
		t.Errorf("missing password message: %s", msg)
	}
}
