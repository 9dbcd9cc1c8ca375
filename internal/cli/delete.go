package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/existflow/tasktracker/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether stdin is interactive; tests replace it
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [task-id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Mark a task as deleted. Deleted tasks disappear from the list and can
be brought back with 'tasktracker restore'.

Examples:
  tasktracker delete 3f2a9c1e
  tasktracker rm 3f2a9c1e -y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(cmd.Context(), a.client, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes && a.cfg.ConfirmDelete && isTerminal() {
				fmt.Fprintf(out, "About to delete: %q (ID: %s)\n", task.Title, task.ID)
				fmt.Fprint(out, "Are you sure? [y/N]: ")
				reply, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if reply = strings.ToLower(strings.TrimSpace(reply)); reply != "y" && reply != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			msg, err := a.client.Delete(cmd.Context(), task.ID)
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			logger.Info("Task deleted from CLI", logger.F("id", task.ID))
			fmt.Fprintf(out, "🗑️  %s: %q\n", msg, task.Title)
			fmt.Fprintf(out, "   Undo with: tasktracker restore %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
