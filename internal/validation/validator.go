package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marketloop/commerce-backend/internal/apperr"
)

// New returns a configured validator shared by all handlers.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// Struct runs schema validation and converts the first violated field into a
// Validation error naming that field.
func Struct(v *validatorv10.Validate, in interface{}) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validatorv10.ValidationErrors); ok && len(ve) > 0 {
		fe := ve[0]
		return apperr.Validation(fieldMessage(fe))
	}
	return apperr.Internal(err)
}

func fieldMessage(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s is below the minimum of %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s exceeds the maximum of %s", fe.Field(), fe.Param())
	case "uuid4":
		return fmt.Sprintf("%s is not a valid ID", fe.Field())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// IsValidID reports whether s is a well-formed document identifier.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
