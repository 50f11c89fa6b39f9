package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rpgo/vat-calculator/internal/tui"
)

func keypadCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "keypad",
		Short:       "Open the terminal keypad",
		Annotations: map[string]string{interactiveAnnotation: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad()
		},
	}
}

func runKeypad() error {
	appCtx.Logger.Info("keypad started")
	defer appCtx.Logger.Info("keypad closed")
	return tui.Run(appCtx.Config, appCtx.Transformer, tea.WithAltScreen())
}

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "prompt",
		Short:       "Ask for one amount and operation",
		Annotations: map[string]string{interactiveAnnotation: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunPrompt(appCtx.Config, appCtx.Transformer, cmd.OutOrStdout())
		},
	}
}
