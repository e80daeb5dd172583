// Package usecase contains the application use cases, wiring the task
// store and clock to the timeline engine.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// NewTaskInput contains the parameters for creating a task.
type NewTaskInput struct {
	Title       string
	Description string
	DueDate     string // ISO date, empty = none
	Time        string // "HH:MM", empty = untimed
	Color       string
	Duration    int // minutes
	Priority    int // 0 = use default
}

// NewTaskOutput contains the result of creating a task.
type NewTaskOutput struct {
	TaskID int
}

// NewTask is the use case for creating a task.
type NewTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute validates the input and persists a new task.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Duration < 0 {
		return nil, domain.ErrNegativeDuration
	}

	priority := in.Priority
	if priority == 0 {
		priority = domain.DefaultPriority
	}
	if priority < 1 || priority > 5 {
		return nil, domain.ErrInvalidPriority
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("allocate task ID: %w", err)
	}

	now := uc.clock.Now()
	task := &domain.Task{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		DueDate:       in.DueDate,
		Time:          in.Time,
		Duration:      in.Duration,
		PriorityLevel: priority,
		Color:         in.Color,
		Created:       now,
		Updated:       now,
	}
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("created task #%d: %s", id, in.Title))
	return &NewTaskOutput{TaskID: id}, nil
}
