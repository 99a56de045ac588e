package main

import (
	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/internal/logger"
	"github.com/riceharvest/a11yutils/internal/scenario"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Log       *logger.Logger
	Evaluator *scenario.Evaluator
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}

	log = log.With("command", cmd.Name())
	return &AppContext{Log: log, Evaluator: scenario.NewEvaluator(log)}, nil
}
