package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEnvMergesDotenvAndProcess(t *testing.T) {
	path := writeFile(t, ".env", "RUMBO_THEME_MODE=dark\nRUMBO_CONTRAST=high\nUNRELATED=1\n")
	t.Setenv(EnvContrast, "medium")

	env, err := ReadEnv(path)
	require.NoError(t, err)
	require.Equal(t, "dark", env[EnvThemeMode])
	require.Equal(t, "medium", env[EnvContrast])
	require.NotContains(t, env, "UNRELATED")
}

func TestReadEnvMissingDotenv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")

	env, err := ReadEnv("does-not-exist.env")
	require.NoError(t, err)
	require.Equal(t, "warn", env[EnvLogLevel])
}

func TestApplyEnvIgnoresBlankValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ApplyEnv(map[string]string{EnvThemeMode: "  ", EnvLocale: "en-GB"})
	require.Equal(t, DefaultThemeMode, cfg.Theme.Mode)
	require.Equal(t, "en-GB", cfg.Locale)
}
