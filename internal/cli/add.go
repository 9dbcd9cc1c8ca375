package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/tasktracker/internal/model"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var in model.TaskInput

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task.

Examples:
  tasktracker add "Buy groceries"
  tasktracker add Buy groceries -c Errands
  tasktracker add "Write report" -d "Q3 numbers" -c Work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Title = strings.Join(args, " ")

			task, err := a.client.Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added to [%s]: %q (%s)\n", task.Category, task.Title, task.ShortID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "", "Task category (default Uncategorized)")
	return cmd
}
