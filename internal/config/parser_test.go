package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appnotresponding/rumbo/internal/field"
	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `theme:
  mode: dark
  contrast: high
locale: en-US
logging:
  level: debug
  human_readable: true
fields:
  - name: document
    label: "Cédula"
    placeholder: "1020304050"
    pattern: '\d{6,10}'
    error_message: "Cédula inválida"
    keyboard: number
`

	invalidYAML := `theme: [dark
locale: es-CO
`

	unknownKey := `theme:
  mode: dark
  colour: teal
`

	badMode := `theme:
  mode: sepia
`

	badPattern := `fields:
  - name: broken
    pattern: "(unclosed"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cfg.Theme.Mode)
				require.Equal(t, "high", cfg.Theme.Contrast)
				require.Equal(t, "en-US", cfg.Locale)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.True(t, cfg.Logging.HumanReadable)
				require.Len(t, cfg.Fields, 1)
				require.Equal(t, "document", cfg.Fields[0].Name)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *rumboerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *rumboerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "theme mode outside the enum fails validation",
			contents: badMode,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *rumboerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.mode", validationErr.Field)
			},
		},
		{
			name:     "uncompilable pattern fails validation",
			contents: badPattern,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *rumboerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "fields[0].pattern", validationErr.Field)
				require.Contains(t, validationErr.Message, "'pattern'")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "rumbo.yaml", tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *rumboerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestLoadWithoutFileAppliesEnv(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", map[string]string{
		EnvThemeMode: "DARK",
		EnvContrast:  "medium",
		EnvLocale:    "pt-BR",
	})
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme.Mode)
	require.Equal(t, "medium", cfg.Theme.Contrast)
	require.Equal(t, "pt-BR", cfg.Locale)
	require.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadRejectsInvalidEnvOverride(t *testing.T) {
	t.Parallel()

	_, err := Load("", map[string]string{EnvLocale: "not a locale!"})
	var validationErr *rumboerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "locale", validationErr.Field)
}

func TestConfigRegistryOverridesBuiltins(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rumbo.yaml", `fields:
  - name: email
    error_message: "Usa tu correo institucional"
  - name: document
    label: "Cédula"
    pattern: '\d{6,10}'
    keyboard: number
`)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	reg, err := cfg.Registry()
	require.NoError(t, err)

	email, ok := reg.Get(field.NameEmail)
	require.True(t, ok)
	require.Equal(t, "Correo electrónico", email.Label)
	require.Equal(t, "Usa tu correo institucional", email.Validate("bad-email", "").Message)

	doc, ok := reg.Get("document")
	require.True(t, ok)
	require.Equal(t, field.KeyboardNumber, doc.Keyboard)
	require.True(t, doc.Validate("12", "").IsError)
	require.Equal(t, field.DefaultErrorMessage, doc.Validate("12", "").Message)
	require.False(t, doc.Validate("1020304050", "").IsError)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, extractLine(errString("yaml: line 3: did not find expected key")))
	require.Zero(t, extractLine(errString("no line here")))
	require.Zero(t, extractLine(nil))
}

type errString string

func (e errString) Error() string { return string(e) }
