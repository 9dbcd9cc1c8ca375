package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mainContent := m.renderTaskList()

	switch m.mode {
	case ModeAddTask, ModeEditTask:
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeHelp:
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m Model) renderTaskList() string {
	width := m.width - 4
	var s strings.Builder

	header := fmt.Sprintf("Tasks (%d active)", len(m.tasks))
	if len(m.trash) > 0 {
		header += fmt.Sprintf(" · %d deleted this session", len(m.trash))
	}
	s.WriteString(HeaderStyle.Render(header) + "\n")
	s.WriteString(lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0))) + "\n\n")

	if m.loading && len(m.tasks) == 0 {
		s.WriteString(HelpStyle.Render("  Loading tasks..."))
	} else if len(m.tasks) == 0 {
		s.WriteString(HelpStyle.Render("  No tasks. Press 'a' to add one."))
	}

	titleWidth := max(width-36, 10)
	for i, t := range m.tasks {
		cursor := "  "
		style := TaskItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		line := style.Render(fmt.Sprintf("%s%-8s  %-*s", cursor, t.ShortID(), titleWidth, truncate(t.Title, titleWidth)))
		line += " " + CategoryStyle.Render(truncate(t.Category, 16))
		s.WriteString(line + "\n")

		if i == m.cursor && t.Description != "" {
			s.WriteString("      " + DescriptionStyle.Render(truncate(t.Description, titleWidth)) + "\n")
		}
	}

	return TaskListStyle.Width(m.width).Height(max(m.height-2, 0)).Render(s.String())
}

func (m Model) renderStatusBar() string {
	help := "a:add  e:edit  d:delete  u:undo  r:refresh  ?:help  q:quit"
	if m.message != "" {
		if m.isError {
			help = ErrorStyle.Render(m.message)
		} else {
			help = SuccessStyle.Render(m.message)
		}
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderModal() string {
	title := "Add Task"
	if m.mode == ModeEditTask {
		title = "Edit Task"
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render("Enter:save  Esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭─── Keyboard Shortcuts ───╮
│                          │
│  Navigation              │
│  ──────────              │
│  j/↓    Move down        │
│  k/↑    Move up          │
│  g/G    Top / bottom     │
│                          │
│  Actions                 │
│  ───────                 │
│  a      Add task         │
│  e      Edit title       │
│  d      Delete           │
│  u      Undo last delete │
│  r      Refresh          │
│                          │
│  Other                   │
│  ─────                   │
│  ?      Toggle help      │
│  q      Quit             │
│                          │
╰──────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, max(m.height-2, 0), lipgloss.Center, lipgloss.Center, help)
}
