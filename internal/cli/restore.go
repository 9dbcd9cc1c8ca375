package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [task-id]",
		Short: "Restore a deleted task",
		Long: `Bring back a deleted task. Deleted tasks are not listed, so the full
ID printed by 'tasktracker delete' is required.

Examples:
  tasktracker restore 3f2a9c1e-7b4d-4e0a-9c55-0d1f2e3a4b5c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			msg, err := a.client.Restore(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to restore task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "♻️  %s (%s)\n", msg, id)
			return nil
		},
	}
}
