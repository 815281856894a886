package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task command group
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Inspect tasks",
		Long:    "Query the seeded task store without opening the TUI.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(TodayCmd())
	cmd.AddCommand(UpcomingCmd())
	cmd.AddCommand(ArchiveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
