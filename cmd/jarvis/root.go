package main

import (
	"github.com/spf13/cobra"

	"jarvis-agent/config"
	"jarvis-agent/pkg/log"
)

// loadFn is replaced in tests.
var loadFn = config.Load

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jarvis",
		Short:         "JARVIS healthcare assistant",
		Long:          `Ask JARVIS a health or general-knowledge question from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAskCmd(), newRouteCmd())
	return root
}

func newLogger(cfg *config.Config, verbose bool) log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}
