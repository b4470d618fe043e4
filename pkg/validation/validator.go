package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes the first failing field of a struct validation
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s: field is required", e.Field)
	case "min", "gte":
		return fmt.Sprintf("%s: must be at least %s", e.Field, e.Param)
	case "max", "lte":
		return fmt.Sprintf("%s: must not exceed %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s: validation failed (%s)", e.Field, e.Tag)
	}
}

// ValidateStruct checks v against its `validate` struct tags. The returned
// error is a *FieldError for the first failing field.
func ValidateStruct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a *FieldError
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	return &FieldError{
		Field: e.Field(),
		Tag:   e.Tag(),
		Param: e.Param(),
	}
}
