package output

import (
	"encoding/json"

	"github.com/rpgo/vat-calculator/internal/domain"
)

// JSONFormatter serializes the batch as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *domain.Batch) ([]byte, error) {
	return json.MarshalIndent(batch, "", "  ")
}
