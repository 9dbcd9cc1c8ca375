package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask("abc", TaskInput{Title: "Buy milk"}, now)

	assert.Equal(t, "abc", task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.False(t, task.Deleted)
	assert.True(t, task.IsActive())
}

func TestTaskApplyKeepsOmittedFields(t *testing.T) {
	task := Task{Title: "a", Description: "b", Category: "c"}

	task.Apply(TaskInput{Category: "work"})
	assert.Equal(t, "a", task.Title)
	assert.Equal(t, "b", task.Description)
	assert.Equal(t, "work", task.Category)

	task.Apply(TaskInput{Title: "new", Description: "desc"})
	assert.Equal(t, "new", task.Title)
	assert.Equal(t, "desc", task.Description)
	assert.Equal(t, "work", task.Category)
}

func TestTaskShortID(t *testing.T) {
	task := Task{ID: "0123456789abcdef"}
	assert.Equal(t, "01234567", task.ShortID())

	task.ID = "abc"
	assert.Equal(t, "abc", task.ShortID())
}
