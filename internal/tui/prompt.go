package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/domain"
)

// RunPrompt asks for one amount and an operation, then writes the outcome to w.
// The amount is not pre-validated; the transformer's message is the answer.
func RunPrompt(config *domain.Configuration, t *calculation.Transformer, w io.Writer) error {
	var amount string
	op := domain.AddVAT

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(config.Title).
				Description("Amount in pounds, up to two decimal places").
				Value(&amount),
			huh.NewSelect[domain.Operation]().
				Title("Operation").
				Options(
					huh.NewOption(domain.AddVAT.Label(), domain.AddVAT),
					huh.NewOption(domain.RemoveVAT.Label(), domain.RemoveVAT),
				).
				Value(&op),
		),
	).Run()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, RenderOutcome(NewStyles(config.Theme), t.Convert(op, amount)))
	return err
}

// RenderOutcome renders a conversion as a single styled line
func RenderOutcome(s Styles, conv domain.Conversion) string {
	if !conv.OK() {
		return s.Failure.Render(conv.Output)
	}
	from, to := "Net", "Gross"
	if conv.Operation == domain.RemoveVAT {
		from, to = to, from
	}
	return s.Success.Render(fmt.Sprintf("%s £%s → %s £%s", from, conv.Amount.StringFixed(2), to, conv.Output))
}
