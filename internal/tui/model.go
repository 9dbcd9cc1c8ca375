package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tasktracker/internal/logger"
	"github.com/existflow/tasktracker/internal/model"
)

const requestTimeout = 10 * time.Second

// TaskService is the subset of the API client the TUI drives
type TaskService interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, in model.TaskInput) (*model.Task, error)
	Update(ctx context.Context, id string, in model.TaskInput) (*model.Task, error)
	Delete(ctx context.Context, id string) (string, error)
	Restore(ctx context.Context, id string) (string, error)
}

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeEditTask
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	svc   TaskService
	tasks []model.Task

	// trash holds tasks deleted in this session, most recent last.
	// The server has no listing of deleted tasks, so this is the only
	// way to offer restore.
	trash []model.Task

	// UI state
	width   int
	height  int
	mode    Mode
	cursor  int
	loading bool

	// Input
	input     textinput.Model
	editingID string

	message string
	isError bool
}

// NewModel creates a new TUI model
func NewModel(svc TaskService) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Enter task title..."
	ti.CharLimit = 256
	ti.Width = 50

	return Model{
		svc:     svc,
		mode:    ModeNormal,
		input:   ti,
		loading: true,
	}
}

// Run starts the TUI and blocks until the user quits
func Run(svc TaskService) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) currentTask() *model.Task {
	if m.cursor >= 0 && m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Messages produced by service commands

type tasksLoadedMsg struct {
	tasks []model.Task
}

type taskSavedMsg struct {
	task    *model.Task
	created bool
}

type taskDeletedMsg struct {
	task    model.Task
	message string
}

type taskRestoredMsg struct {
	task    model.Task
	message string
}

type errMsg struct {
	op  string
	id  string
	err error
}

func (m Model) loadTasks() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tasks, err := svc.List(ctx)
		if err != nil {
			return errMsg{op: "load", err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) createTask(in model.TaskInput) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		task, err := svc.Create(ctx, in)
		if err != nil {
			return errMsg{op: "create", err: err}
		}
		return taskSavedMsg{task: task, created: true}
	}
}

func (m Model) updateTask(id string, in model.TaskInput) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		task, err := svc.Update(ctx, id, in)
		if err != nil {
			return errMsg{op: "update", id: id, err: err}
		}
		return taskSavedMsg{task: task}
	}
}

func (m Model) deleteTask(task model.Task) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := svc.Delete(ctx, task.ID)
		if err != nil {
			return errMsg{op: "delete", id: task.ID, err: err}
		}
		return taskDeletedMsg{task: task, message: msg}
	}
}

func (m Model) restoreTask(task model.Task) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := svc.Restore(ctx, task.ID)
		if err != nil {
			return errMsg{op: "restore", id: task.ID, err: err}
		}
		return taskRestoredMsg{task: task, message: msg}
	}
}
