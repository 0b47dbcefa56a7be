// Command hpackctl drives the hpack codec from the command line: encode
// a JSON header list to HPACK bytes, decode HPACK bytes back to
// headers, inspect a decoded block's dynamic table state, and verify
// the built-in test vectors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackctl/internal/shared/config"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "hpackctl",
		Short:         "Encode and decode HPACK header blocks",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			l, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a hpackctl YAML config file")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newFixturesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger(level string) (*zap.Logger, error) {
	switch level {
	case "", "info":
		return zap.NewProduction()
	case "debug":
		return zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("hpackctl: unknown log level %q", level)
	}
}
