package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// UpdateTaskInput contains the fields to change on a task.
// Nil pointers mean "leave unchanged".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *string // "" clears the due date
	Time        *string // "" clears the clock time
	Color       *string
	Duration    *int
	Priority    *int
	TaskID      int
}

// UpdateTask is the use case for partial task updates.
type UpdateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute applies the non-nil fields to the task.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) error {
	if in.Title == nil && in.Description == nil && in.DueDate == nil &&
		in.Time == nil && in.Color == nil && in.Duration == nil && in.Priority == nil {
		return domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return domain.ErrEmptyTitle
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.Time != nil {
		task.Time = *in.Time
	}
	if in.Color != nil {
		task.Color = *in.Color
	}
	if in.Duration != nil {
		if *in.Duration < 0 {
			return domain.ErrNegativeDuration
		}
		task.Duration = *in.Duration
	}
	if in.Priority != nil {
		if *in.Priority < 1 || *in.Priority > 5 {
			return domain.ErrInvalidPriority
		}
		task.PriorityLevel = *in.Priority
	}

	task.Updated = uc.clock.Now()
	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("updated task #%d", in.TaskID))
	return nil
}
