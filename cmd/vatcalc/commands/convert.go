package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/rpgo/vat-calculator/internal/output"
)

func convertCmd(op domain.Operation) *cobra.Command {
	var (
		format  string
		save    bool
		saveDir string
	)

	cmd := &cobra.Command{
		Use:   op.String() + " amount [amount...]",
		Short: fmt.Sprintf("%s to each amount (each argument is a %s amount)", op.Label(), strings.ToLower(op.Subject())),
		Long: fmt.Sprintf("%s to each amount. Invalid amounts print their validation message "+
			"and do not fail the command. Put amounts after -- if any start with a dash.", op.Label()),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = appCtx.Config.Output.Format
			}

			batch := appCtx.Transformer.RunBatch(op, args)
			data, err := output.Render(batch, format)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Wrap(err, "write output")
			}

			if save {
				path, err := output.GenerateReport(batch, format, saveDir)
				if err != nil {
					return errors.Wrap(err, "save report")
				}
				appCtx.Logger.Info("report saved", zap.String("path", path), zap.String("format", format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: console, json, csv (default from configuration)")
	cmd.Flags().BoolVar(&save, "save", false, "also write the output to a timestamped report file")
	cmd.Flags().StringVar(&saveDir, "dir", "", "directory for saved reports (default: current directory)")
	return cmd
}
