package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"sepulka/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo and reports
// failures as ValueIsInvalid errors named after the JSON field.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	joined := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(fe.Field(), describe(fe)))
	}
	return errors.Join(joined...)
}

func describe(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errors.New("this field is required")
	case "max":
		return fmt.Errorf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Errorf("ensure this field has at least %s characters", fe.Param())
	case "email":
		return errors.New("enter a valid email address")
	case "oneof":
		return fmt.Errorf("must be one of: %s", fe.Param())
	}
	return fmt.Errorf("failed on the %q rule", fe.Tag())
}
