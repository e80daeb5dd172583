package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// CompleteTaskInput contains the parameters for completing or reopening a task.
type CompleteTaskInput struct {
	TaskID int
	Reopen bool // true = mark incomplete again
}

// CompleteTask is the use case for toggling task completion.
type CompleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute marks the task completed (or reopens it) and stamps CompletedAt.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	now := uc.clock.Now()
	if in.Reopen {
		task.IsCompleted = false
		task.CompletedAt = time.Time{}
	} else {
		task.IsCompleted = true
		task.CompletedAt = now
	}
	task.Updated = now

	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	verb := "completed"
	if in.Reopen {
		verb = "reopened"
	}
	uc.logger.Info("task", fmt.Sprintf("%s task #%d", verb, in.TaskID))
	return nil
}
