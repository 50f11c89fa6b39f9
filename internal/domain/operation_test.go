package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"add", AddVAT},
		{" ADD ", AddVAT},
		{"+", AddVAT},
		{"gross", AddVAT},
		{"remove", RemoveVAT},
		{"-", RemoveVAT},
		{"Net", RemoveVAT},
	}
	for _, tt := range tests {
		got, err := ParseOperation(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseOperation("multiply")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestOperationLabels(t *testing.T) {
	assert.Equal(t, "Add VAT", AddVAT.Label())
	assert.Equal(t, "Remove VAT", RemoveVAT.Label())
	assert.Equal(t, "Net", AddVAT.Subject())
	assert.Equal(t, "Gross", RemoveVAT.Subject())
	assert.Equal(t, "add", AddVAT.String())
	assert.Equal(t, "remove", RemoveVAT.String())
}

func TestOperationText(t *testing.T) {
	var doc struct {
		Op Operation `yaml:"op" json:"op"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("op: remove\n"), &doc))
	assert.Equal(t, RemoveVAT, doc.Op)

	assert.Error(t, yaml.Unmarshal([]byte("op: divide\n"), &doc))

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"remove"}`, string(b))
}
