package cli

import (
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-utilskit/pkg/logger"
	"github.com/huynhanx03/go-utilskit/pkg/settings"
)

// app holds state shared by subcommands once the root pre-run has loaded it.
type app struct {
	configPath string
	cfg        *settings.Config
	log        *logger.Logger
}

// NewRootCmd creates the root command for the utilskit CLI.
func NewRootCmd(ver string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "utilskit",
		Short:         "Batch image fetching and small document utilities",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.log != nil {
				_ = a.log.Sync()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a config file (yaml, json or toml)")
	cmd.AddCommand(newFetchCmd(a), newHexCmd())

	return cmd
}

func (a *app) setup() error {
	cfg, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Logger)
	if err != nil {
		return err
	}
	logger.SetDefault(l)

	a.cfg = cfg
	a.log = l
	return nil
}
