package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/existflow/tasktracker/internal/model"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active tasks",
		Long: `List active tasks grouped by category, in creation order.

Examples:
  tasktracker list
  tasktracker list -c Work`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.client.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			if category != "" {
				filtered := tasks[:0]
				for _, t := range tasks {
					if strings.EqualFold(t.Category, category) {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found. Add one with: tasktracker add \"Your task\"")
				return nil
			}

			printTasksByCategory(out, tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show tasks in this category")
	return cmd
}

func printTasksByCategory(out io.Writer, tasks []model.Task) {
	// categories in order of first appearance keep the output stable
	var order []string
	byCategory := make(map[string][]model.Task)
	for _, t := range tasks {
		if _, ok := byCategory[t.Category]; !ok {
			order = append(order, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	for _, c := range order {
		group := byCategory[c]
		fmt.Fprintf(out, "\n%s\n", headerStyle.Render(fmt.Sprintf("📁 %s (%d)", c, len(group))))
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, t := range group {
			printTaskLine(out, t)
		}
	}
	fmt.Fprintln(out)
}
