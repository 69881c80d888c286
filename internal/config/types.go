package config

// Config represents the rumbo.yaml document.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Locale  string        `yaml:"locale" validate:"omitempty,bcp47"`
	Logging LoggingConfig `yaml:"logging"`
	Fields  []FieldPreset `yaml:"fields,omitempty" validate:"omitempty,dive"`
}

// ThemeConfig selects the colour scheme. Mode "auto" asks the terminal.
type ThemeConfig struct {
	Mode     string `yaml:"mode" validate:"omitempty,oneof=light dark auto"`
	Contrast string `yaml:"contrast" validate:"omitempty,oneof=standard medium high"`
}

// LoggingConfig configures the zerolog sink.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// FieldPreset declares a custom text field preset, or overrides a built-in one
// when Name matches.
type FieldPreset struct {
	Name         string `yaml:"name" validate:"required,preset_name"`
	Label        string `yaml:"label" validate:"max=60"`
	Placeholder  string `yaml:"placeholder" validate:"max=60"`
	Pattern      string `yaml:"pattern" validate:"omitempty,pattern"`
	ErrorMessage string `yaml:"error_message" validate:"max=200"`
	Keyboard     string `yaml:"keyboard" validate:"omitempty,keyboard"`
	Transform    string `yaml:"transform" validate:"omitempty,transform"`
}

// Defaults applied to anything the file and environment leave empty.
const (
	DefaultThemeMode = "light"
	DefaultContrast  = "standard"
	DefaultLocale    = "es-CO"
	DefaultLogLevel  = "info"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Theme.Mode == "" {
		c.Theme.Mode = DefaultThemeMode
	}
	if c.Theme.Contrast == "" {
		c.Theme.Contrast = DefaultContrast
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
