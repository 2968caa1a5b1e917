// Package validation owns the shared go-playground validator instance used
// for widget documents and opaque descriptors.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	widgetIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			return widgetIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates value and converts the first failure into a ConfigError
// attributed to component.
func Struct(component string, value any) error {
	if err := validatorInstance().Struct(value); err != nil {
		return convertValidationError(component, err)
	}
	return nil
}

// convertValidationError normalizes validator errors into ConfigErrors.
func convertValidationError(component string, err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "required" {
			msg = "missing required field"
		}
		return &skerrors.ConfigError{
			Component: component,
			Field:     field,
			Value:     fmt.Sprint(ve.Value()),
			Message:   msg,
			Err:       err,
		}
	}

	return skerrors.NewConfigError(component, "", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the yaml key path.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
