package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance for request DTOs.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate checks the struct's validate tags.
func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
