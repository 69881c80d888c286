package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds the effective configuration: defaults, then the YAML file at
// path when non-empty, then env overrides, then validation.
func Load(path string, env map[string]string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		parsed, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	cfg.ApplyEnv(env)
	cfg.applyDefaults()

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk, validates it, and returns
// the resulting model with defaults applied.
func ParseConfig(path string) (*Config, error) {
	return Load(path, nil)
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rumboerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, rumboerrors.NewParseError(path, extractLine(err), err)
	}
	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
