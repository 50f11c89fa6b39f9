package calculation

import (
	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/rpgo/vat-calculator/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
)

var (
	// VATRate is the fixed UK standard rate
	VATRate = shopspring.RequireFromString("0.2")
	// UpperLimit is the largest amount accepted (£1b)
	UpperLimit = decimal.NewMoneyFromDecimal(shopspring.NewFromInt(1_000_000_000))
)

// Transformer turns a raw amount into either a formatted result or an error message
type Transformer struct {
	Logger Logger
}

// NewTransformer creates a transformer with a no-op logger
func NewTransformer() *Transformer {
	return &Transformer{Logger: NopLogger{}}
}

// SetLogger sets the logger for the transformer. If nil is provided, a no-op logger is used.
func (t *Transformer) SetLogger(l Logger) {
	if l == nil {
		t.Logger = NopLogger{}
		return
	}
	t.Logger = l
}

// AddVAT returns raw × 1.2 to two places, or the validation message
func (t *Transformer) AddVAT(raw string) string {
	return t.Convert(domain.AddVAT, raw).Output
}

// RemoveVAT returns raw ÷ 1.2 to two places, or the validation message
func (t *Transformer) RemoveVAT(raw string) string {
	return t.Convert(domain.RemoveVAT, raw).Output
}

// Apply dispatches to AddVAT or RemoveVAT
func (t *Transformer) Apply(op domain.Operation, raw string) string {
	return t.Convert(op, raw).Output
}

// Convert validates raw and applies op, recording the outcome either way
func (t *Transformer) Convert(op domain.Operation, raw string) domain.Conversion {
	conv := domain.Conversion{Operation: op, Input: raw}

	amount, err := Validate(op, raw)
	if err != nil {
		conv.ErrorKind = domain.KindOf(err)
		conv.Output = err.Error()
		t.Logger.Debugf("%s rejected %q: %s", op, raw, conv.ErrorKind)
		return conv
	}

	var result decimal.Money
	switch op {
	case domain.RemoveVAT:
		result = amount.RemoveTax(VATRate)
	default:
		result = amount.AddTax(VATRate)
	}
	result = result.Round()

	conv.Amount = amount.Decimal
	conv.Result = result.Decimal
	conv.Output = result.String()
	t.Logger.Debugf("%s %s -> %s", op, amount, conv.Output)
	return conv
}

// RunBatch converts every input with the same operation
func (t *Transformer) RunBatch(op domain.Operation, inputs []string) *domain.Batch {
	batch := &domain.Batch{Conversions: make([]domain.Conversion, 0, len(inputs))}
	for _, in := range inputs {
		batch.Conversions = append(batch.Conversions, t.Convert(op, in))
	}
	t.Logger.Infof("%s: %d converted, %d rejected", op, batch.Succeeded(), batch.Failed())
	return batch
}
