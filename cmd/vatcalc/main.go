// Command vatcalc adds or removes 20% VAT from an amount.
//
// Usage:
//
//	vatcalc                      opens the terminal keypad
//	vatcalc add 100 19.99        prints gross amounts
//	vatcalc remove -- 120        prints net amounts
//	vatcalc --config vatcalc.yaml prompt
package main

import (
	"os"

	"github.com/rpgo/vat-calculator/cmd/vatcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
