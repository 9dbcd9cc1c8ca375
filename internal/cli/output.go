package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tasktracker/internal/client"
	"github.com/existflow/tasktracker/internal/model"
)

const fullIDLength = 36

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
)

// resolveTask finds an active task by full ID or unique ID prefix
func resolveTask(ctx context.Context, c *client.Client, id string) (*model.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("task id is required")
	}
	if len(id) >= fullIDLength {
		return c.Get(ctx, id)
	}

	tasks, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	var match *model.Task
	for i := range tasks {
		if !strings.HasPrefix(tasks[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("task id %q is ambiguous", id)
		}
		match = &tasks[i]
	}
	if match == nil {
		return nil, fmt.Errorf("task not found: %s", id)
	}
	return match, nil
}

func printTaskLine(w io.Writer, t model.Task) {
	title := t.Title
	if r := []rune(title); len(r) > 40 {
		title = string(r[:37]) + "..."
	}
	fmt.Fprintf(w, "  %s  %-40s  %s\n",
		idStyle.Render(t.ShortID()), title, categoryStyle.Render(t.Category))
}

func printTaskDetail(w io.Writer, t model.Task) {
	fmt.Fprintln(w, headerStyle.Render(t.Title))
	fmt.Fprintf(w, "  ID:          %s\n", t.ID)
	fmt.Fprintf(w, "  Category:    %s\n", t.Category)
	if t.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", t.Description)
	} else {
		fmt.Fprintf(w, "  Description: %s\n", mutedStyle.Render("(none)"))
	}
	fmt.Fprintf(w, "  Created:     %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Updated:     %s\n", t.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
}
