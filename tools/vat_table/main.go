package main

import (
	"fmt"
	"os"

	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints a net/VAT/gross ladder, either for the given amounts or for £1, £10 ... £1b.
func main() {
	tr := calculation.NewTransformer()

	amounts := os.Args[1:]
	if len(amounts) == 0 {
		for d := decimal.NewFromInt(1); d.LessThanOrEqual(calculation.UpperLimit.Decimal); d = d.Mul(decimal.NewFromInt(10)) {
			amounts = append(amounts, d.String())
		}
	}

	fmt.Printf("%16s %16s %16s   %s\n", "Net", "Gross", "Net again", "Round trip")
	for _, in := range amounts {
		gross := tr.Convert(domain.AddVAT, in)
		if !gross.OK() {
			fmt.Printf("%16s %s\n", in, gross.Output)
			continue
		}
		back := tr.Convert(domain.RemoveVAT, gross.Output)
		if !back.OK() {
			fmt.Printf("%16s %16s %16s\n", gross.Amount.StringFixed(2), gross.Output, back.Output)
			continue
		}
		status := "ok"
		if !back.Result.Equal(gross.Amount) {
			status = "drift " + back.Result.Sub(gross.Amount).StringFixed(2)
		}
		fmt.Printf("%16s %16s %16s   %s\n", gross.Amount.StringFixed(2), gross.Output, back.Output, status)
	}
}
