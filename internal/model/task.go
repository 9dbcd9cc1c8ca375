package model

import "time"

// DefaultCategory is assigned to tasks created without a category
const DefaultCategory = "Uncategorized"

// Task represents a single tracked item
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Deleted     bool      `json:"deleted"`
}

// TaskInput holds the client-supplied fields for create and update.
// An empty string means the field was not supplied.
type TaskInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// NewTask creates a new active task with defaults applied
func NewTask(id string, in TaskInput, now time.Time) Task {
	category := in.Category
	if category == "" {
		category = DefaultCategory
	}
	return Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
		Deleted:     false,
	}
}

// Apply copies every supplied field of in onto the task.
// It does not touch timestamps.
func (t *Task) Apply(in TaskInput) {
	if in.Title != "" {
		t.Title = in.Title
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if in.Category != "" {
		t.Category = in.Category
	}
}

// IsActive returns true if the task has not been soft-deleted
func (t *Task) IsActive() bool {
	return !t.Deleted
}

// ShortID returns the first eight characters of the id for display
func (t *Task) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}
