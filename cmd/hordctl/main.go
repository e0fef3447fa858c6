package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	// Diagnostics go to stderr so stdout stays machine-readable JSON.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	root := &cobra.Command{
		Use:          "hordctl",
		Short:        "Operator CLI for the Hord Manager conversion engine",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newConvertCmd(),
		newToUSDCmd(),
		newFromUSDCmd(),
		newBreakdownCmd(),
		newRatesCmd(),
		newDisplayCmd(),
		newHashPasswordCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
