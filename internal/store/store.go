package store

import (
	"sync"
	"time"

	"github.com/existflow/tasktracker/internal/logger"
	"github.com/existflow/tasktracker/internal/model"
	"github.com/google/uuid"
)

const (
	msgTitleRequired     = "Title is required"
	msgTaskNotFound      = "Task not found"
	msgTaskNotDeleted    = "Task not found or not deleted"
	maxIDAttempts        = 3
	initialStoreCapacity = 64
)

// Store is the in-memory task collection. Tasks are kept in insertion
// order and are never removed; SoftDelete and Restore only flip the
// deleted flag. All operations are serialized behind a single lock.
type Store struct {
	mu    sync.RWMutex
	tasks []*model.Task
	index map[string]*model.Task

	clock *monotonicClock
	newID func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces the wall clock used to stamp tasks
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.clock = newMonotonicClock(now)
	}
}

// WithIDGenerator replaces the UUID generator used for new tasks
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		tasks: make([]*model.Task, 0, initialStoreCapacity),
		index: make(map[string]*model.Task, initialStoreCapacity),
		clock: newMonotonicClock(time.Now),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the input and appends a new active task
func (s *Store) Create(in model.TaskInput) (model.Task, error) {
	if in.Title == "" {
		return model.Task{}, NewValidationError(msgTitleRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.allocateID()
	if err != nil {
		return model.Task{}, err
	}

	task := model.NewTask(id, in, s.clock.Now())
	s.tasks = append(s.tasks, &task)
	s.index[id] = &task

	logger.Debug("Task created", logger.F("id", id), logger.F("category", task.Category))
	return task, nil
}

// allocateID must be called with the write lock held
func (s *Store) allocateID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, exists := s.index[id]; !exists {
			return id, nil
		}
	}
	return "", newInternalError("failed to allocate a unique task id")
}

// ListActive returns copies of all non-deleted tasks in insertion order
func (s *Store) ListActive() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.IsActive() {
			active = append(active, *t)
		}
	}
	return active
}

// Get returns a copy of an active task
func (s *Store) Get(id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.index[id]
	if !ok || !t.IsActive() {
		return model.Task{}, NewNotFoundError(msgTaskNotFound)
	}
	return *t, nil
}

// Update applies the supplied fields to an active task and always
// refreshes updated_at, even when no value changes.
func (s *Store) Update(id string, in model.TaskInput) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[id]
	if !ok || !t.IsActive() {
		return model.Task{}, NewNotFoundError(msgTaskNotFound)
	}

	t.Apply(in)
	t.UpdatedAt = s.clock.Now()

	logger.Debug("Task updated", logger.F("id", id))
	return *t, nil
}

// SoftDelete marks an active task as deleted. Deleting a task twice fails.
func (s *Store) SoftDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[id]
	if !ok || !t.IsActive() {
		return NewNotFoundError(msgTaskNotFound)
	}

	t.Deleted = true
	t.UpdatedAt = s.clock.Now()

	logger.Debug("Task soft-deleted", logger.F("id", id))
	return nil
}

// Restore reactivates a deleted task. Restoring an active task fails.
func (s *Store) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[id]
	if !ok || t.IsActive() {
		return NewNotFoundError(msgTaskNotDeleted)
	}

	t.Deleted = false
	t.UpdatedAt = s.clock.Now()

	logger.Debug("Task restored", logger.F("id", id))
	return nil
}

// Len returns the number of tasks ever created, deleted ones included
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
