// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"familytree/internal/domain/entity"
	"familytree/internal/errors"

	"github.com/go-playground/validator/v10"
)

var upperNamePattern = regexp.MustCompile(`^[A-Z]+$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the family tree tags registered:
// uppername (upper-case letters only), gender and relation (a relation slot).
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("uppername", func(fl validator.FieldLevel) bool {
		return upperNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return entity.Gender(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("relation", func(fl validator.FieldLevel) bool {
		return entity.RelationSlot(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors maps each failing field to the tag it failed, or returns nil
// when err is not a validation error.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		out[fieldErr.Field()] = fieldErr.Tag()
	}

	return out
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
