package integration

import (
	"strings"
	"testing"

	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/config"
	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/rpgo/vat-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	batch := calculation.NewTransformer().RunBatch(domain.RemoveVAT, []string{"120", "abc"})

	data, err := output.Render(batch, cfg.Output.Format)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "remove,120,100.00,100.00,20.00,120.00,", lines[1])

	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(batch, format, t.TempDir())
		assert.NoError(t, err, format)
		assert.NotEmpty(t, path)
	}
}
