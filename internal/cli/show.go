package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task",
		Long: `Show every field of an active task. The ID may be shortened to any
unique prefix.

Examples:
  tasktracker show 3f2a9c1e`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(cmd.Context(), a.client, args[0])
			if err != nil {
				return err
			}
			printTaskDetail(cmd.OutOrStdout(), *task)
			return nil
		},
	}
}
