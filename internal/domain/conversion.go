package domain

import (
	"github.com/shopspring/decimal"
)

// Conversion records a single transformer call
type Conversion struct {
	Operation Operation       `json:"operation"`
	Input     string          `json:"input"`
	Output    string          `json:"output"`
	Amount    decimal.Decimal `json:"amount"`
	Result    decimal.Decimal `json:"result"`
	ErrorKind ErrorKind       `json:"error_kind,omitempty"`
}

// OK reports whether the input passed validation
func (c Conversion) OK() bool {
	return c.ErrorKind == 0
}

// Batch is the set of conversions produced by one CLI invocation
type Batch struct {
	Conversions []Conversion `json:"conversions"`
}

// Succeeded counts conversions that produced an amount
func (b *Batch) Succeeded() int {
	n := 0
	for _, c := range b.Conversions {
		if c.OK() {
			n++
		}
	}
	return n
}

// Failed counts conversions that produced an error message
func (b *Batch) Failed() int {
	return len(b.Conversions) - b.Succeeded()
}
