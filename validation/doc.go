// Package validation provides input validation utilities.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// what the config loader uses.
//
// # Struct Tag Validation
//
//	type Options struct {
//	    Level string `validate:"required,oneof=debug info warn error"`
//	    Limit int    `validate:"min=1"`
//	}
//	err := validation.ValidateStruct(opts)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).Min("limit", limit, 1)
//	if err := v.Validate(); err != nil { ... }
package validation
