package cli

import (
	"errors"
	"fmt"

	"github.com/existflow/tasktracker/internal/model"
	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	var in model.TaskInput

	cmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Edit a task",
		Long: `Change the title, description or category of an active task.
Fields without a flag are left unchanged.

Examples:
  tasktracker edit 3f2a9c1e -t "Buy oat milk"
  tasktracker edit 3f2a9c1e -c Errands -d "before 6pm"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == (model.TaskInput{}) {
				return errors.New("nothing to change: use --title, --description or --category")
			}

			task, err := resolveTask(cmd.Context(), a.client, args[0])
			if err != nil {
				return err
			}

			updated, err := a.client.Update(cmd.Context(), task.ID, in)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated: %q\n", updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "", "New category")
	return cmd
}
