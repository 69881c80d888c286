package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/appnotresponding/rumbo/internal/config"
	"github.com/appnotresponding/rumbo/internal/field"
	"github.com/appnotresponding/rumbo/internal/logger"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

// AppContext bundles what every command needs, built once before it runs.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Registry *field.Registry
	Locale   language.Tag
}

// hasDarkBackground is replaced in tests; querying the terminal blocks when
// there is none.
var hasDarkBackground = lipgloss.HasDarkBackground

func (a *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	env, err := config.ReadEnv(flags.envPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.configPath, env)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable || flags.verbose,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}

	a.Config = cfg
	a.Logger = log
	a.Registry = registry
	a.Locale = locale

	log.WithFields(map[string]any{
		"config":   flags.configPath,
		"theme":    cfg.Theme.Mode,
		"contrast": cfg.Theme.Contrast,
		"locale":   cfg.Locale,
		"presets":  len(registry.Names()),
	}).Debug("configuration loaded")
	return nil
}

// Theme resolves the configured theme, letting non-empty arguments override
// the mode and contrast. Mode "auto" asks the terminal for its background.
func (a *AppContext) Theme(mode, contrast string) (components.Theme, error) {
	if mode == "" {
		mode = a.Config.Theme.Mode
	}
	if contrast == "" {
		contrast = a.Config.Theme.Contrast
	}

	if mode == "auto" {
		mode = "light"
		if hasDarkBackground() {
			mode = "dark"
		}
		a.Logger.WithFields(map[string]any{"mode": mode}).Debug("resolved terminal background")
	}

	m, err := components.ParseMode(mode)
	if err != nil {
		return components.Theme{}, err
	}
	c, err := components.ParseContrast(contrast)
	if err != nil {
		return components.Theme{}, err
	}
	return components.NewTheme(m, c), nil
}

// RenderContext is the theme and locale components render with on stdout.
func (a *AppContext) RenderContext(theme components.Theme) components.RenderContext {
	return components.NewContext(theme).WithLocale(a.Locale)
}
