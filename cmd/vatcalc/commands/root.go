package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/config"
	"github.com/rpgo/vat-calculator/internal/domain"
)

const interactiveAnnotation = "interactive"

var (
	configPath string
	logLevel   string
	appCtx     *app
)

// app is the dependency graph shared by subcommands
type app struct {
	Config      *domain.Configuration
	Logger      *zap.Logger
	Transformer *calculation.Transformer
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vatcalc",
		Short:        "Add or remove 20% VAT",
		Annotations:  map[string]string{interactiveAnnotation: "true"},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().Load(configPath)
			if err != nil {
				return errors.Wrap(err, "load configuration")
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			logger, err := newLogger(cfg.Logging, cmd.Annotations[interactiveAnnotation] == "true", cmd.ErrOrStderr())
			if err != nil {
				return errors.Wrap(err, "build logger")
			}

			t := calculation.NewTransformer()
			t.SetLogger(logger.Sugar())
			appCtx = &app{Config: cfg, Logger: logger, Transformer: t}

			logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML configuration (default: built-in settings)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides configuration)")

	root.AddCommand(
		convertCmd(domain.AddVAT),
		convertCmd(domain.RemoveVAT),
		keypadCmd(),
		promptCmd(),
		configCmd(),
	)
	return root
}
