package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/arrkit/errors"
	"github.com/kbukum/arrkit/guid"
)

func TestValidateStruct(t *testing.T) {
	type opts struct {
		Level string `json:"level" validate:"required,oneof=debug info warn error"`
		Limit int    `json:"limit" validate:"min=1"`
	}

	if err := ValidateStruct(opts{Level: "info", Limit: 3}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}

	err := ValidateStruct(opts{Level: "loud", Limit: 0})
	if err == nil {
		t.Fatal("invalid struct accepted")
	}
	if !errors.IsCode(err, errors.CodeInvalidArgument) {
		t.Errorf("unexpected error kind: %v", err)
	}
	if !strings.Contains(err.Error(), "level") || !strings.Contains(err.Error(), "limit") {
		t.Errorf("error message missing field names: %v", err)
	}
}

func TestValidateStructUsesJSONTagNames(t *testing.T) {
	type opts struct {
		LogLevel string `json:"log_level" validate:"required"`
	}
	err := ValidateStruct(opts{})
	if err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Errorf("expected json tag name in message, got %v", err)
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := New().
		Required("name", "").
		Min("limit", 0, 1).
		OneOf("mode", "loud", []string{"quiet", "normal"})

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Errorf("collected %d errors, want 3", len(v.Errors()))
	}

	err := v.Validate()
	if err == nil {
		t.Fatal("Validate returned nil")
	}
	if err.Details["fields"] == nil {
		t.Error("expected field details")
	}
}

func TestValidatorPasses(t *testing.T) {
	v := New().
		Required("name", "ok").
		Range("limit", 5, 1, 10).
		Pattern("code", "abc123", `^[a-z]+[0-9]+$`)

	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
	if err := v.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestValidatorRequiredGUID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid", guid.NewString(), true},
		{"empty", "", false},
		{"garbage", "nope", false},
		{"nil guid", "00000000-0000-0000-0000-000000000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New().RequiredGUID("id", tt.value)
			if v.HasErrors() == tt.valid {
				t.Errorf("RequiredGUID(%q) errors = %v", tt.value, v.Errors())
			}
		})
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New().Custom(false, "pair", "bounds must be compatible")
	if err := v.Validate(); err == nil || !strings.Contains(err.Error(), "bounds must be compatible") {
		t.Errorf("Validate = %v", err)
	}
}
