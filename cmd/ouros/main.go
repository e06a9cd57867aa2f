package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ouros/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ouros",
	Short: "Ouros sandboxed Python interpreter",
	Long:  `Ouros runs untrusted Python 3.14-compatible code deterministically inside a host process.`,
}

var (
	timeoutCancel   context.CancelFunc
	timeoutDuration time.Duration
)

// main configures the root CLI command (sets the version, registers
// subcommands, and defines persistent flags) and then executes it,
// exiting with status 1 if execution fails.
func main() {
	rootCmd.Version = version.VersionString()
	rootCmd.PersistentPreRunE = applyTimeout
	rootCmd.PersistentPostRun = cleanupTimeout

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().String("color", "auto", "color mode (auto|on|off); not read: color follows terminal detection")
	rootCmd.PersistentFlags().Bool("quiet", false, "quiet mode; not read: no output is suppressed")
	rootCmd.PersistentFlags().Int("timeout", 30, "command timeout in seconds")
	rootCmd.PersistentFlags().String("config", "", "path to ouros.toml (defaults to searching upward from cwd)")
	rootCmd.PersistentFlags().Uint64("max-memory-mb", 0, "override the session memory ceiling in MB (0 = use config/default)")
	rootCmd.PersistentFlags().Uint64("max-operations", 0, "override the session operation ceiling (0 = use config/default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyTimeout(cmd *cobra.Command, _ []string) error {
	secs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read timeout flag: %w", err)
	}
	if secs <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}

	timeoutDuration = time.Duration(secs) * time.Second
	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutDuration)
	timeoutCancel = cancel

	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	go func() {
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			fmt.Fprintf(os.Stderr, "ouros: command timed out after %s\n", timeoutDuration)
			os.Exit(1)
		}
	}()
	return nil
}

func cleanupTimeout(*cobra.Command, []string) {
	if timeoutCancel != nil {
		timeoutCancel()
		timeoutCancel = nil
	}
}
