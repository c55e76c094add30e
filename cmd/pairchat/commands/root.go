package commands

import (
	"github.com/spf13/cobra"

	"pairchat/internal/app"
)

var (
	logLevel  string
	logFormat string
	appWire   *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "pairchat",
		Short: "Ephemeral code-paired chat sessions over an in-process relay",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			app.SetupLogging(cfg)
			appWire = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console or json)")

	root.AddCommand(demoCmd(), codeCmd())
	return root.Execute()
}
