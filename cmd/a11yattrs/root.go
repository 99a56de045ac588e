package main

import (
	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/internal/config"
)

type rootFlags struct {
	verbose    bool
	logLevel   string
	logJSON    bool
	configPath string
	config     config.Config
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "a11yattrs",
		Short:         "a11yattrs maps UI interaction state onto accessibility attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $A11YATTRS_CONFIG or <user config dir>/a11yattrs/config.yaml)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVocabularyCmd())
	cmd.AddCommand(newPlaygroundCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig fills every persistent flag the user did not set explicitly from
// the config file and environment.
func loadConfig(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return newCommandError(cmd.Name(), "loading configuration", err, "Fix or remove the config file, or point --config at a valid one.")
	}
	flags.config = cfg

	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		flags.logLevel = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-json") {
		flags.logJSON = cfg.Log.JSON
	}
	return nil
}
