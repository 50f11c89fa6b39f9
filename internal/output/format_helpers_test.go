package output

import (
	"testing"

	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "£1234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestNetGrossVAT(t *testing.T) {
	add := domain.Conversion{Operation: domain.AddVAT, Amount: decimal.NewFromInt(100), Result: decimal.NewFromInt(120)}
	net, vat, gross := netGrossVAT(add)
	if net.String() != "100" || vat.String() != "20" || gross.String() != "120" {
		t.Errorf("add split = %s/%s/%s", net, vat, gross)
	}

	remove := domain.Conversion{Operation: domain.RemoveVAT, Amount: decimal.NewFromInt(120), Result: decimal.NewFromInt(100)}
	net, vat, gross = netGrossVAT(remove)
	if net.String() != "100" || vat.String() != "20" || gross.String() != "120" {
		t.Errorf("remove split = %s/%s/%s", net, vat, gross)
	}
}
