package tui

import (
	"context"
	"net/http"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tasktracker/internal/client"
	"github.com/existflow/tasktracker/internal/model"
	"github.com/existflow/tasktracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeService serves the TUI straight from an in-memory store
type storeService struct {
	st *store.Store
}

func toAPIError(err error) error {
	if store.IsNotFound(err) {
		return &client.APIError{StatusCode: http.StatusNotFound, Message: err.Error()}
	}
	return err
}

func (s storeService) List(context.Context) ([]model.Task, error) {
	return s.st.ListActive(), nil
}

func (s storeService) Create(_ context.Context, in model.TaskInput) (*model.Task, error) {
	t, err := s.st.Create(in)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s storeService) Update(_ context.Context, id string, in model.TaskInput) (*model.Task, error) {
	t, err := s.st.Update(id, in)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &t, nil
}

func (s storeService) Delete(_ context.Context, id string) (string, error) {
	if err := s.st.SoftDelete(id); err != nil {
		return "", toAPIError(err)
	}
	return "Task marked as deleted", nil
}

func (s storeService) Restore(_ context.Context, id string) (string, error) {
	if err := s.st.Restore(id); err != nil {
		return "", toAPIError(err)
	}
	return "Task restored successfully", nil
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive feeds msg to the model and keeps executing returned commands
// until the model settles.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

func newTestModel(t *testing.T, titles ...string) (Model, *store.Store) {
	t.Helper()
	st := store.New()
	for _, title := range titles {
		_, err := st.Create(model.TaskInput{Title: title})
		require.NoError(t, err)
	}
	m := NewModel(storeService{st: st})
	// a blinking cursor schedules timer commands that would stall drive
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = drive(t, m, m.Init()())
	return m, st
}

func TestInitLoadsTasks(t *testing.T) {
	m, _ := newTestModel(t, "first", "second")

	require.Len(t, m.tasks, 2)
	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "Tasks (2 active)")
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")

	m = drive(t, m, runeKey("j"))
	m = drive(t, m, runeKey("j"))
	m = drive(t, m, runeKey("j"))
	assert.Equal(t, 2, m.cursor)

	m = drive(t, m, runeKey("k"))
	assert.Equal(t, 1, m.cursor)

	m = drive(t, m, runeKey("g"))
	assert.Equal(t, 0, m.cursor)

	m = drive(t, m, runeKey("G"))
	assert.Equal(t, 2, m.cursor)
}

func TestDeleteAndUndo(t *testing.T) {
	m, st := newTestModel(t, "keep", "remove")

	m = drive(t, m, runeKey("j"))
	m = drive(t, m, runeKey("d"))

	require.Len(t, m.tasks, 1)
	assert.Equal(t, "keep", m.tasks[0].Title)
	require.Len(t, m.trash, 1)
	assert.Equal(t, "remove", m.trash[0].Title)
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, st.ListActive(), 1)

	m = drive(t, m, runeKey("u"))
	assert.Empty(t, m.trash)
	require.Len(t, m.tasks, 2)
	assert.Contains(t, m.message, "Task restored successfully")

	m = drive(t, m, runeKey("u"))
	assert.Equal(t, "Nothing to restore", m.message)
}

func TestUndoAfterExternalRestoreDropsTrashEntry(t *testing.T) {
	m, st := newTestModel(t, "shared")

	m = drive(t, m, runeKey("d"))
	require.Len(t, m.trash, 1)

	require.NoError(t, st.Restore(m.trash[0].ID))

	m = drive(t, m, runeKey("u"))
	assert.Empty(t, m.trash)
	assert.True(t, m.isError)
	assert.Len(t, m.tasks, 1)
}

func TestRemoveFromTrashLeavesEarlierModelIntact(t *testing.T) {
	m, _ := newTestModel(t)
	m.trash = []model.Task{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}, {ID: "c", Title: "third"}}
	before := m

	m.removeFromTrash("a")

	require.Len(t, m.trash, 2)
	assert.Equal(t, "b", m.trash[0].ID)
	assert.Equal(t, "c", m.trash[1].ID)

	require.Len(t, before.trash, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{before.trash[0].ID, before.trash[1].ID, before.trash[2].ID})
}

func TestAddTask(t *testing.T) {
	m, st := newTestModel(t)

	m = drive(t, m, runeKey("a"))
	require.Equal(t, ModeAddTask, m.mode)
	assert.Contains(t, m.View(), "Add Task")

	m = drive(t, m, runeKey("Buy milk"))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Buy milk", m.tasks[0].Title)
	assert.Equal(t, model.DefaultCategory, m.tasks[0].Category)
	assert.Equal(t, 1, st.Len())
}

func TestAddEmptyTitleIsRejected(t *testing.T) {
	m, st := newTestModel(t)

	m = drive(t, m, runeKey("a"))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, m.mode)
	assert.True(t, m.isError)
	assert.Equal(t, "Title is required", m.message)
	assert.Equal(t, 0, st.Len())
}

func TestEditTitle(t *testing.T) {
	m, _ := newTestModel(t, "old")

	m = drive(t, m, runeKey("e"))
	require.Equal(t, ModeEditTask, m.mode)
	assert.Equal(t, "old", m.input.Value())

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = drive(t, m, runeKey("new"))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.tasks, 1)
	assert.Equal(t, "new", m.tasks[0].Title)
	assert.Contains(t, m.message, "Updated: new")
}

func TestEscapeCancelsInput(t *testing.T) {
	m, st := newTestModel(t)

	m = drive(t, m, runeKey("a"))
	m = drive(t, m, runeKey("draft"))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, st.Len())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = drive(t, m, runeKey("?"))
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = drive(t, m, runeKey("x"))
	assert.Equal(t, ModeNormal, m.mode)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
