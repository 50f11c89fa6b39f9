package calculation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_AddVAT(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		in   string
		want string
	}{
		{"100", "120.00"},
		{"0", "0.00"},
		{"100.5", "120.60"},
		{"  19.99 ", "23.99"},
		{"12.340", "14.81"},
		{".5", "0.60"},
		{"5.", "6.00"},
		{"1000000000", "1200000000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.AddVAT(tt.in))
		})
	}
}

func TestTransformer_RemoveVAT(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		in   string
		want string
	}{
		{"120", "100.00"},
		{"0", "0.00"},
		{"100", "83.33"},
		{"23.99", "19.99"},
		{"1000000000", "833333333.33"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.RemoveVAT(tt.in))
		})
	}
}

func TestTransformer_ErrorMessages(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name   string
		in     string
		add    string
		remove string
	}{
		{"empty", "", "Input must not be empty.", "Input must not be empty."},
		{"blank", "   ", "Input must not be empty.", "Input must not be empty."},
		{"letters", "abc", "Input must be numeric.", "Input must be numeric."},
		{"negative sign", "-5", "Input must be numeric.", "Input must be numeric."},
		{"plus sign", "+5", "Input must be numeric.", "Input must be numeric."},
		{"two points", "1.2.3", "Input must be numeric.", "Input must be numeric."},
		{"lone point", ".", "Input must be numeric.", "Input must be numeric."},
		{"exponent", "1e5", "Input must be numeric.", "Input must be numeric."},
		{"three decimals", "12.345", "Pence must be two decimals.", "Invalid input."},
		{"too large", "1000000001", "Net value must be less than £1b.", "Gross value must be less than £1b."},
		{"just over", "1000000000.01", "Net value must be less than £1b.", "Gross value must be less than £1b."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.add, tr.AddVAT(tt.in))
			assert.Equal(t, tt.remove, tr.RemoveVAT(tt.in))
		})
	}
}

func TestValidate_Kinds(t *testing.T) {
	tests := []struct {
		in   string
		kind domain.ErrorKind
	}{
		{"", domain.EmptyInput},
		{"-5", domain.NotNumeric},
		{"12.345", domain.TooManyDecimals},
		{"1000000001", domain.TooLarge},
	}
	for _, tt := range tests {
		_, err := Validate(domain.AddVAT, tt.in)
		require.Error(t, err, tt.in)
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount))

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tt.kind, ve.Kind, tt.in)
		assert.Equal(t, tt.in, ve.Input)
	}
}

func TestValidate_ShortCircuitsInOrder(t *testing.T) {
	// Non-numeric text with many decimals still reports NotNumeric.
	_, err := Validate(domain.AddVAT, "-1.23456")
	assert.Equal(t, domain.NotNumeric, domain.KindOf(err))

	// Too many decimals on a too-large amount reports TooManyDecimals.
	_, err = Validate(domain.AddVAT, "2000000000.123")
	assert.Equal(t, domain.TooManyDecimals, domain.KindOf(err))
}

func TestValidate_Accepts(t *testing.T) {
	amount, err := Validate(domain.RemoveVAT, " 42.10 ")
	require.NoError(t, err)
	assert.Equal(t, "42.10", amount.String())
}

func TestTransformer_MatchesRoundedFormula(t *testing.T) {
	tr := NewTransformer()
	factor := decimal.RequireFromString("1.2")

	for cents := int64(0); cents <= 500000; cents += 737 {
		n := decimal.New(cents, -2)
		in := n.StringFixed(2)

		assert.Equal(t, n.Mul(factor).Round(2).StringFixed(2), tr.AddVAT(in), in)
		assert.Equal(t, n.DivRound(factor, 8).Round(2).StringFixed(2), tr.RemoveVAT(in), in)
	}
}

func TestTransformer_RoundTrip(t *testing.T) {
	tr := NewTransformer()

	for _, n := range []float64{0, 0.01, 0.99, 1, 12.34, 100, 999.99, 123456.78, 833333333.33} {
		in := fmt.Sprintf("%.2f", n)
		back := tr.RemoveVAT(tr.AddVAT(in))

		got, err := decimal.NewFromString(back)
		require.NoError(t, err, in)
		f, _ := got.Float64()
		assert.InDelta(t, n, f, 0.01, in)
	}
}

func TestTransformer_Convert(t *testing.T) {
	tr := NewTransformer()

	ok := tr.Convert(domain.AddVAT, "100.5")
	assert.True(t, ok.OK())
	assert.Equal(t, "120.60", ok.Output)
	assert.True(t, ok.Amount.Equal(decimal.RequireFromString("100.5")))
	assert.True(t, ok.Result.Equal(decimal.RequireFromString("120.6")))

	bad := tr.Convert(domain.RemoveVAT, "12.345")
	assert.False(t, bad.OK())
	assert.Equal(t, domain.TooManyDecimals, bad.ErrorKind)
	assert.Equal(t, "Invalid input.", bad.Output)
	assert.True(t, bad.Result.IsZero())
}

func TestTransformer_Apply(t *testing.T) {
	tr := NewTransformer()
	assert.Equal(t, tr.AddVAT("10"), tr.Apply(domain.AddVAT, "10"))
	assert.Equal(t, tr.RemoveVAT("12"), tr.Apply(domain.RemoveVAT, "12"))
}

type recordingLogger struct {
	NopLogger
	infos []string
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func TestTransformer_RunBatch(t *testing.T) {
	tr := NewTransformer()
	rec := &recordingLogger{}
	tr.SetLogger(rec)

	batch := tr.RunBatch(domain.AddVAT, []string{"100", "", "0.5", "abc"})
	require.Len(t, batch.Conversions, 4)
	assert.Equal(t, 2, batch.Succeeded())
	assert.Equal(t, 2, batch.Failed())
	assert.Equal(t, "120.00", batch.Conversions[0].Output)
	assert.Equal(t, domain.EmptyInput, batch.Conversions[1].ErrorKind)
	assert.Equal(t, "0.60", batch.Conversions[2].Output)
	assert.Equal(t, domain.NotNumeric, batch.Conversions[3].ErrorKind)

	require.Len(t, rec.infos, 1)
	assert.Contains(t, rec.infos[0], "2 converted, 2 rejected")
}

func TestTransformer_SetLoggerNil(t *testing.T) {
	tr := NewTransformer()
	tr.SetLogger(nil)
	assert.IsType(t, NopLogger{}, tr.Logger)
}
