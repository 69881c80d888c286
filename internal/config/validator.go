package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/appnotresponding/rumbo/internal/field"
	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return rumboerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Fields))
	for i, preset := range cfg.Fields {
		if first, exists := seen[preset.Name]; exists {
			return rumboerrors.NewValidationError(fieldForPreset(i, "name"),
				fmt.Sprintf("duplicate preset %q (first declared at fields[%d])", preset.Name, first), nil)
		}
		seen[preset.Name] = i
	}

	return nil
}

// Presets converts the configured field presets. A preset named like a
// built-in starts from the built-in and overrides only the keys it sets.
func (c *Config) Presets() ([]field.Preset, error) {
	presets := make([]field.Preset, 0, len(c.Fields))
	builtins := field.NewRegistry()

	for i, fp := range c.Fields {
		preset, ok := builtins.Get(fp.Name)
		if !ok {
			preset = field.Preset{Name: fp.Name}
		}

		if fp.Label != "" {
			preset.Label = fp.Label
		}
		if fp.Placeholder != "" {
			preset.Placeholder = fp.Placeholder
		}
		if fp.ErrorMessage != "" {
			preset.ErrorMessage = fp.ErrorMessage
		}
		if fp.Pattern != "" {
			pattern, err := field.CompilePattern(fp.Pattern)
			if err != nil {
				return nil, rumboerrors.NewValidationError(fieldForPreset(i, "pattern"), "invalid pattern", err)
			}
			preset.Pattern = pattern
		}
		if fp.Keyboard != "" {
			kb, err := field.ParseKeyboard(fp.Keyboard)
			if err != nil {
				return nil, rumboerrors.NewValidationError(fieldForPreset(i, "keyboard"), err.Error(), err)
			}
			preset.Keyboard = kb
		}
		if fp.Transform != "" {
			tr, err := field.ParseTransform(fp.Transform)
			if err != nil {
				return nil, rumboerrors.NewValidationError(fieldForPreset(i, "transform"), err.Error(), err)
			}
			preset.Transform = tr
		}

		presets = append(presets, preset)
	}
	return presets, nil
}

// Registry returns the built-in presets with the configured ones registered on top.
func (c *Config) Registry() (*field.Registry, error) {
	presets, err := c.Presets()
	if err != nil {
		return nil, err
	}

	reg := field.NewRegistry()
	for _, p := range presets {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		name := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", name, ve.Tag())
		return rumboerrors.NewValidationError(name, msg, err)
	}

	return rumboerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace: "Config.theme.mode"
// becomes "theme.mode".
func yamlishFieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}

func fieldForPreset(index int, name string) string {
	return fmt.Sprintf("fields[%d].%s", index, name)
}
