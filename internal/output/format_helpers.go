package output

import (
	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "£"

// FormatCurrency formats a decimal as sterling with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return CurrencySymbol + amount.StringFixed(2) }

// netGrossVAT splits a successful conversion into its net, VAT and gross parts.
func netGrossVAT(c domain.Conversion) (net, vat, gross decimal.Decimal) {
	if c.Operation == domain.RemoveVAT {
		net, gross = c.Result, c.Amount
	} else {
		net, gross = c.Amount, c.Result
	}
	return net, gross.Sub(net), gross
}
