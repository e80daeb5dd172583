// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"time"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[int]*domain.Task
	SaveErr error
	GetErr  error
	ListErr error
	NextIDN int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	// Return a copy to avoid mutation
	copied := *task
	return &copied, nil
}

// List returns tasks matching the filter, sorted by ID.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if t.IsCompleted && !filter.IncludeCompleted {
			continue
		}
		if filter.Color != "" && t.Color != filter.Color {
			continue
		}
		if filter.Priority != 0 && t.PriorityLevel != filter.Priority {
			continue
		}
		tasks = append(tasks, *t)
	}
	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return a.ID - b.ID
	})
	return tasks, nil
}

// Save creates or updates a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if _, ok := m.Tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// NextID returns sequential IDs starting from NextIDN.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockRecurringTaskRepository is a test double for domain.RecurringTaskRepository.
type MockRecurringTaskRepository struct {
	Templates map[int]*domain.RecurringTask
	SaveErr   error
	ListErr   error
	NextIDN   int
}

// NewMockRecurringTaskRepository creates a new MockRecurringTaskRepository.
func NewMockRecurringTaskRepository() *MockRecurringTaskRepository {
	return &MockRecurringTaskRepository{
		Templates: make(map[int]*domain.RecurringTask),
		NextIDN:   1,
	}
}

// GetRecurring retrieves a template by ID.
func (m *MockRecurringTaskRepository) GetRecurring(id int) (*domain.RecurringTask, error) {
	rt, ok := m.Templates[id]
	if !ok {
		return nil, nil
	}
	copied := *rt
	return &copied, nil
}

// ListRecurring returns templates sorted by ID.
func (m *MockRecurringTaskRepository) ListRecurring(activeOnly bool) ([]domain.RecurringTask, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	templates := make([]domain.RecurringTask, 0, len(m.Templates))
	for _, rt := range m.Templates {
		if activeOnly && !rt.IsActive {
			continue
		}
		templates = append(templates, *rt)
	}
	slices.SortFunc(templates, func(a, b domain.RecurringTask) int {
		return a.ID - b.ID
	})
	return templates, nil
}

// SaveRecurring creates or updates a template.
func (m *MockRecurringTaskRepository) SaveRecurring(rt *domain.RecurringTask) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	copied := *rt
	m.Templates[rt.ID] = &copied
	return nil
}

// DeleteRecurring removes a template by ID.
func (m *MockRecurringTaskRepository) DeleteRecurring(id int) error {
	if _, ok := m.Templates[id]; !ok {
		return domain.ErrTemplateNotFound
	}
	delete(m.Templates, id)
	return nil
}

// NextRecurringID returns sequential IDs starting from NextIDN.
func (m *MockRecurringTaskRepository) NextRecurringID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
