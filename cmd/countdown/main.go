// Package main implements the countdown CLI and server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"countdown/internal/di"
	"countdown/internal/structures"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:           "countdown",
		Short:         "Countdown - track the time left until the events you care about",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "Path to the YAML config file (created on first run)")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Also log to stderr")

	root.AddCommand(
		newServeCmd(flags),
		newListCmd(flags),
		newAddCmd(flags),
		newRemoveCmd(flags),
		newMoveCmd(flags),
		newExportCmd(flags),
		newRestoreCmd(flags),
	)
	return root
}

// openRuntime wires the store and its collaborators for one command.
func openRuntime(flags *structures.CliFlags) (*di.Runtime, error) {
	rt, err := di.InitRuntime(flags)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return rt, nil
}
