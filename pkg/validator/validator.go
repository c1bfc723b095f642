package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let gte/gt/lte work on money and measurement fields
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "len":
				errs[field] = field + " must be exactly " + e.Param() + " characters"
			case "numeric":
				errs[field] = field + " must contain only digits"
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errs[field] = field + " must be a date formatted as " + e.Param()
			case "gt":
				errs[field] = field + " must be greater than " + e.Param()
			case "gte":
				errs[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = field + " must be less than or equal to " + e.Param()
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}
