package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goto/backoffice/pkg/apierror"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct validates f against its `validate` tags. Failures are
// returned as an invalid-argument error listing every violation.
func ValidateStruct(f interface{}) error {
	return checkError(getValidator().Struct(f))
}

// ValidateOneOf checks that value is empty or one of enums.
func ValidateOneOf(value string, enums ...string) error {
	tags := "omitempty,oneof=" + strings.Join(enums, " ")
	return checkError(getValidator().Var(value, tags))
}

func checkError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apierror.Invalid(err.Error(), nil)
	}

	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, describe(e))
	}
	return apierror.Invalid(strings.Join(problems, " and "), problems)
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		msg := fmt.Sprintf("error value \"%v\"", e.Value())
		if e.Field() != "" {
			msg += fmt.Sprintf(" for key \"%s\"", e.Field())
		}
		return msg + fmt.Sprintf(" not recognized, only support \"%s\"", e.Param())
	case "gte", "min":
		return fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param())
	case "lte", "max":
		return fmt.Sprintf("%s cannot be greater than %s", e.Field(), e.Param())
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	}
	return e.Error()
}
