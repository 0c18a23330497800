package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	internal_errors "github.com/threads-be/threads/shared/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names so details match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v and returns a 400 error naming the first offending field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return internal_errors.Validation(describe(fieldErrs[0]))
	}
	return err
}

func describe(fe validator.FieldError) string {
	field := fmt.Sprintf("%q", fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is not allowed to be empty"
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "url", "http_url":
		return field + " must be a valid uri"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
	}
}
