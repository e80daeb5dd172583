package usecase

import (
	"context"
	"fmt"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	SortBy           domain.SortBy    // Sort key (empty = createdAt)
	Direction        domain.Direction // Sort direction (empty = asc)
	Color            string           // Filter by color tag (empty = all)
	Priority         int              // Filter by priority level (0 = all)
	IncludeCompleted bool             // Include completed tasks
}

// ListTasksOutput contains the sorted task list.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for flat sorted list views.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute snapshots the store and returns it sorted by the requested key.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = domain.SortByCreatedAt
	}
	dir := in.Direction
	if dir == "" {
		dir = domain.Ascending
	}

	snapshot, err := uc.tasks.List(domain.TaskFilter{
		Color:            in.Color,
		Priority:         in.Priority,
		IncludeCompleted: in.IncludeCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: timeline.SortTasks(snapshot, sortBy, dir)}, nil
}
