package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("brandcolor", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateBrand performs schema validation on a brand configuration. Every
// color literal is checked here so malformed colors are a load-time error,
// never a runtime one.
func ValidateBrand(cfg *BrandConfig) error {
	if cfg == nil {
		return brandkiterrors.NewValidationError("brand", "configuration is nil", nil)
	}

	for name, value := range cfg.Palette {
		if !hexColorPattern.MatchString(value) {
			return brandkiterrors.NewValidationError(
				fmt.Sprintf("palette.%s", name),
				fmt.Sprintf("palette entry %q is not a hex color", value), nil)
		}
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return brandkiterrors.NewValidationError(field, msg, err)
	}

	return brandkiterrors.NewValidationError("brand", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
