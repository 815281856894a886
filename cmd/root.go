package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/category"
	"github.com/thenoetrevino/taskflow/internal/cli/task"
	"github.com/thenoetrevino/taskflow/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow - a terminal task manager",
	Long: `TaskFlow is a terminal task manager with categories, priorities and due dates.

Run without arguments to open the TUI, or use the tasks and categories
subcommands to query the seeded store from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.Flags().String("seed", "", "Seed file to load instead of the configured one")
	rootCmd.Flags().Bool("no-latency", false, "Disable simulated store latency")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(category.CategoryCmd())
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Command handlers report their own errors; cobra-level failures
	// (unknown commands, bad flags, wrong arg counts) are usage errors
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		if exitErr.Code == cli.ExitUsage && !isReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return cli.ExitUsage
}

// isReported reports whether a handler already printed err
func isReported(err error) bool {
	var usage *cli.UsageError
	return errors.As(err, &usage)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	seedFile, _ := cmd.Flags().GetString("seed")
	noLatency, _ := cmd.Flags().GetBool("no-latency")
	logLevel, _ := cmd.Flags().GetString("log-level")

	err := launcher.Launch(cmd.Context(), launcher.Options{
		SeedFile:  seedFile,
		NoLatency: noLatency,
		LogLevel:  logLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}
