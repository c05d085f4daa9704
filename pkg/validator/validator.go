package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so bound request structs (like the upload form's optional
// BCP 47 language tag) are checked from their validate tags.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a CustomValidator with the default tag-based rule set.
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate checks i against its struct validate tags.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
