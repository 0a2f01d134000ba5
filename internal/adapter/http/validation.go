package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"credit-backoffice/internal/adapter/response"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// money columns are decimal(18,2)
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []response.FieldError with readable messages.
func ToFieldErrors(err error) []response.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []response.FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]response.FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, response.FieldError{Field: field, Message: "is required"})
		case "dec2":
			out = append(out, response.FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "gte":
			out = append(out, response.FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, response.FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "min":
			out = append(out, response.FieldError{Field: field, Message: "must not be empty"})
		default:
			out = append(out, response.FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
