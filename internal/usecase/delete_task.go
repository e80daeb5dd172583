package usecase

import (
	"context"
	"fmt"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: logger}
}

// Execute removes the task from the store.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	uc.logger.Info("task", fmt.Sprintf("deleted task #%d", in.TaskID))
	return nil
}
