// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs using `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports JSON field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return tagName(field.Tag.Get("json"), field.Tag.Get("form"), field.Name)
	})
	// Registration fails only for an empty tag or a nil func.
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &CustomValidator{validate: v}
}

// maxBytes bounds a string by its encoded length. max counts runes, bcrypt counts bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// Validate implements echo.Validator. Failures are ErrValidationFailed
// carrying one "field: rule" entry per violation.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation failed")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s: must be at most %s bytes", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag())
	}
}

func tagName(tags ...string) string {
	for _, tag := range tags {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}
