package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tasktracker/internal/client"
	"github.com/existflow/tasktracker/internal/logger"
	"github.com/existflow/tasktracker/internal/model"
)

// Init loads the task list
func (m Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.loading = false
		m.clampCursor()
		return m, nil

	case taskSavedMsg:
		if msg.created {
			m.setMessage(fmt.Sprintf("Added: %s", msg.task.Title))
			// new tasks are appended, so follow them
			m.cursor = len(m.tasks)
		} else {
			m.setMessage(fmt.Sprintf("Updated: %s", msg.task.Title))
		}
		return m, m.loadTasks()

	case taskDeletedMsg:
		m.trash = append(m.trash, msg.task)
		m.setMessage(fmt.Sprintf("%s: %s (u to undo)", msg.message, msg.task.Title))
		return m, m.loadTasks()

	case taskRestoredMsg:
		m.removeFromTrash(msg.task.ID)
		m.setMessage(fmt.Sprintf("%s: %s", msg.message, msg.task.Title))
		return m, m.loadTasks()

	case errMsg:
		logger.Warn("TUI request failed",
			logger.F("op", msg.op),
			logger.F("id", msg.id),
			logger.F("error", msg.err))
		m.loading = false
		m.setError(fmt.Sprintf("%s failed: %v", msg.op, msg.err))
		if client.IsNotFound(msg.err) {
			// the task changed state elsewhere; our view is stale
			if msg.op == "restore" {
				m.removeFromTrash(msg.id)
			}
			return m, m.loadTasks()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTask, ModeEditTask:
			return m.updateInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Top):
		m.cursor = 0

	case key.Matches(msg, keys.Bottom):
		m.cursor = len(m.tasks) - 1
		m.clampCursor()

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddTask
		m.editingID = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, keys.Edit):
		task := m.currentTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeEditTask
		m.editingID = task.ID
		m.input.SetValue(task.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, keys.Delete):
		task := m.currentTask()
		if task == nil {
			return m, nil
		}
		return m, m.deleteTask(*task)

	case key.Matches(msg, keys.Restore):
		if len(m.trash) == 0 {
			m.setMessage("Nothing to restore")
			return m, nil
		}
		return m, m.restoreTask(m.trash[len(m.trash)-1])

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		m.setMessage("Refreshing...")
		return m, m.loadTasks()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

// updateInput handles key presses while the title input is open
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		m.editingID = ""
		return m, nil

	case key.Matches(msg, keys.Enter):
		title := strings.TrimSpace(m.input.Value())
		mode := m.mode
		id := m.editingID

		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.editingID = ""

		if title == "" {
			m.setError("Title is required")
			return m, nil
		}
		if mode == ModeAddTask {
			return m, m.createTask(model.TaskInput{Title: title})
		}
		return m, m.updateTask(id, model.TaskInput{Title: title})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) removeFromTrash(id string) {
	for i := len(m.trash) - 1; i >= 0; i-- {
		if m.trash[i].ID == id {
			// older Model values may still share the backing array
			m.trash = slices.Delete(slices.Clone(m.trash), i, i+1)
			return
		}
	}
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *Model) setError(s string) {
	m.message = s
	m.isError = true
}
