package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

// Environment variables that override the file.
const (
	EnvThemeMode = "RUMBO_THEME_MODE"
	EnvContrast  = "RUMBO_CONTRAST"
	EnvLocale    = "RUMBO_LOCALE"
	EnvLogLevel  = "RUMBO_LOG_LEVEL"
)

var envKeys = []string{EnvThemeMode, EnvContrast, EnvLocale, EnvLogLevel}

// ReadEnv collects overrides from an optional dotenv file and the process
// environment. Process variables win over the file. A missing dotenv file is
// not an error.
func ReadEnv(dotenvPath string) (map[string]string, error) {
	env := make(map[string]string, len(envKeys))

	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, rumboerrors.NewParseError(dotenvPath, 0, err)
		default:
			for _, key := range envKeys {
				if value, ok := values[key]; ok {
					env[key] = value
				}
			}
		}
	}

	for _, key := range envKeys {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}
	return env, nil
}

// ApplyEnv overlays non-empty overrides onto the configuration.
func (c *Config) ApplyEnv(env map[string]string) {
	set := func(key string, target *string) {
		if value := strings.TrimSpace(env[key]); value != "" {
			*target = strings.ToLower(value)
		}
	}

	set(EnvThemeMode, &c.Theme.Mode)
	set(EnvContrast, &c.Theme.Contrast)
	set(EnvLogLevel, &c.Logging.Level)

	// Locale tags keep their case (es-CO).
	if value := strings.TrimSpace(env[EnvLocale]); value != "" {
		c.Locale = value
	}
}
