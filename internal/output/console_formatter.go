package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/vat-calculator/internal/domain"
)

// ConsoleFormatter prints one line per conversion followed by totals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(batch *domain.Batch) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "VAT CONVERSIONS (20%)")
	fmt.Fprintln(&buf, "================================")
	for _, conv := range batch.Conversions {
		if !conv.OK() {
			fmt.Fprintf(&buf, "%q: %s\n", conv.Input, conv.Output)
			continue
		}
		net, vat, gross := netGrossVAT(conv)
		if conv.Operation == domain.RemoveVAT {
			fmt.Fprintf(&buf, "Gross %s - VAT %s = Net %s\n", FormatCurrency(gross), FormatCurrency(vat), FormatCurrency(net))
		} else {
			fmt.Fprintf(&buf, "Net %s + VAT %s = Gross %s\n", FormatCurrency(net), FormatCurrency(vat), FormatCurrency(gross))
		}
	}
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "Converted: %d  Rejected: %d\n", batch.Succeeded(), batch.Failed())
	return buf.Bytes(), nil
}
