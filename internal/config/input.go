package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/vat-calculator/internal/domain"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// SupportedFormats lists the output.format values accepted in a configuration
var SupportedFormats = []string{"console", "json", "csv"}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// Default returns the configuration used when no file is given.
// The colours are the classic dark keypad theme.
func Default() *domain.Configuration {
	return &domain.Configuration{
		Title: "VAT Calculator",
		Theme: domain.Theme{
			Background:      "#1e1e1e",
			Foreground:      "#f4f4f4",
			Accent:          "#005a9e",
			EntryBackground: "#333333",
			Button:          "#0078d7",
		},
		Logging: domain.LoggingConfig{Level: "info"},
		Output:  domain.OutputConfig{Format: "console"},
	}
}

// Load returns Default() for an empty filename, otherwise LoadFromFile
func (ip *InputParser) Load(filename string) (*domain.Configuration, error) {
	if filename == "" {
		return Default(), nil
	}
	return ip.LoadFromFile(filename)
}

// LoadFromFile loads configuration from a YAML file. Unset fields keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if strings.TrimSpace(config.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if err := ip.validateTheme(&config.Theme); err != nil {
		return fmt.Errorf("theme validation failed: %w", err)
	}

	if _, err := zapcore.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("logging level %q must be one of debug, info, warn, error", config.Logging.Level)
	}

	format := strings.ToLower(config.Output.Format)
	supported := false
	for _, f := range SupportedFormats {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("output format %q must be one of %s", config.Output.Format, strings.Join(SupportedFormats, ", "))
	}

	return nil
}

// validateTheme checks every colour is a #rrggbb hex string
func (ip *InputParser) validateTheme(theme *domain.Theme) error {
	colours := []struct {
		name  string
		value string
	}{
		{"background", theme.Background},
		{"foreground", theme.Foreground},
		{"accent", theme.Accent},
		{"entry_background", theme.EntryBackground},
		{"button", theme.Button},
	}
	for _, c := range colours {
		if !isHexColour(c.value) {
			return fmt.Errorf("%s colour %q must be in #rrggbb form", c.name, c.value)
		}
	}
	return nil
}

func isHexColour(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := Default()
	config.Logging.File = "vatcalc.log"
	return config
}
