package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/appnotresponding/rumbo/internal/field"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	presetNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package. Field names follow the yaml tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return presetNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pattern", func(fl validator.FieldLevel) bool {
			_, err := field.CompilePattern(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("keyboard", func(fl validator.FieldLevel) bool {
			_, err := field.ParseKeyboard(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("transform", func(fl validator.FieldLevel) bool {
			_, err := field.ParseTransform(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
