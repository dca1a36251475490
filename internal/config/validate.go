package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// validatorInstance configures the validator so errors name fields by their
// config keys rather than Go names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

// Validate checks settings against their declared constraints.
func Validate(s *Settings) error {
	if s == nil {
		return pkerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		return pkerrors.NewValidationError(field, describe(fe), err)
	}

	return pkerrors.NewValidationError("settings", err.Error(), err)
}

// fieldName drops the root struct name from the namespace, e.g. "faq[1].answer".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
