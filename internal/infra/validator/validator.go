// Package validator adapts go-playground/validator to echo and to the use case layer.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator implements echo.Validator and service.PayloadValidator.
type Validator struct {
	validate *validator.Validate
}

var _ service.PayloadValidator = (*Validator)(nil)

// New creates a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	// notblank rejects strings made only of whitespace.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{validate: validate}
}

// Validate checks the struct tags of payload and joins every violation into one message.
func (v *Validator) Validate(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate payload")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
		}
		if fieldErr.Kind() == reflect.Slice || fieldErr.Kind() == reflect.Map {
			return fmt.Sprintf("%s must contain at least %s entries", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s failed the %s check", field, fieldErr.Tag())
	}
}
