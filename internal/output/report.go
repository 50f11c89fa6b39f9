package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/vat-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats the batch with the named formatter or alias.
func Render(batch *domain.Batch, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return f.Format(batch)
}

// GenerateReport writes the batch to a timestamped file in dir and returns its path.
func GenerateReport(batch *domain.Batch, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		_, err := Render(batch, format)
		return "", err
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	return WriteFormatted(f, batch, dir, ext)
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
