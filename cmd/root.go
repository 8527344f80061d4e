package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recruitscout/recruitscout/internal/app"
)

var cfgFile string

// appKeyType is the key for storing the App in the command context.
type appKeyType string

const appKey appKeyType = "app"

// newApp is the application factory. It is a variable so tests can
// replace it with a factory returning a canned App.
var newApp = func() (*app.App, error) {
	return app.New(cfgFile)
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recruitscout",
		Short: "Aggregates job postings from multiple job boards.",
		Long: `recruitscout harvests job postings from a set of job boards
(a JSON API plus several rendered HTML listing pages), normalizes them
into one record shape, deduplicates them, and serves the result over
HTTP or prints it from the command line.`,

		// Runs after flags are parsed but before the subcommand, so every
		// subcommand finds a fully wired application in its context.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			instance, err := newApp()
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, instance))
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if instance := appFromContext(cmd.Context()); instance != nil {
				instance.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults plus RECRUITSCOUT_* env vars)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHarvestCmd())

	return cmd
}

func appFromContext(ctx context.Context) *app.App {
	instance, _ := ctx.Value(appKey).(*app.App)
	return instance
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
