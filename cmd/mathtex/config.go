package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the mathtex configuration
type Config struct {
	Wrap string `yaml:"wrap"` // "none", "inline", or "display"
}

// LoadConfig loads configuration from the given path. A missing file is
// not an error; defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Wrap: "none",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Wrap == "" {
		config.Wrap = "none"
	}

	if _, err := wrapMarkup("", config.Wrap); err != nil {
		return nil, err
	}

	return config, nil
}

// wrapMarkup wraps rendered markup in math-mode delimiters
func wrapMarkup(markup, mode string) (string, error) {
	switch mode {
	case "", "none":
		return markup, nil
	case "inline":
		return "$" + markup + "$", nil
	case "display":
		return `\[` + markup + `\]`, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWrapMode, mode)
	}
}
