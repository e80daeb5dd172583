package usecase

import (
	"context"
	"fmt"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// GenerateTasksOutput contains the tasks materialized for today.
type GenerateTasksOutput struct {
	Created []domain.Task
}

// GenerateTasks is the use case that materializes active recurring
// templates into dated tasks for the current day.
type GenerateTasks struct {
	tasks     domain.TaskRepository
	recurring domain.RecurringTaskRepository
	clock     domain.Clock
	logger    domain.Logger
}

// NewGenerateTasks creates a new GenerateTasks use case.
func NewGenerateTasks(tasks domain.TaskRepository, recurring domain.RecurringTaskRepository, clock domain.Clock, logger domain.Logger) *GenerateTasks {
	return &GenerateTasks{tasks: tasks, recurring: recurring, clock: clock, logger: logger}
}

// Execute creates one task per active template whose weekday matches
// today. Templates that already have a task due today are skipped, so
// repeated runs are idempotent.
func (uc *GenerateTasks) Execute(_ context.Context) (*GenerateTasksOutput, error) {
	templates, err := uc.recurring.ListRecurring(true)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	now := uc.clock.Now()
	today := now.Format("2006-01-02")

	existing, err := uc.tasks.List(domain.TaskFilter{IncludeCompleted: true})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	generated := make(map[int]bool)
	for _, t := range existing {
		if t.RecurringID != 0 && t.DueDate == today {
			generated[t.RecurringID] = true
		}
	}

	out := &GenerateTasksOutput{}
	for _, rt := range templates {
		if rt.Weekday != now.Weekday() || generated[rt.ID] {
			continue
		}

		id, err := uc.tasks.NextID()
		if err != nil {
			return nil, fmt.Errorf("allocate task ID: %w", err)
		}
		task := domain.Task{
			ID:            id,
			Title:         rt.Title,
			Description:   rt.Description,
			DueDate:       today,
			Time:          rt.Time,
			Duration:      rt.Duration,
			PriorityLevel: rt.PriorityLevel,
			Color:         rt.Color,
			RecurringID:   rt.ID,
			Created:       now,
			Updated:       now,
		}
		if err := uc.tasks.Save(&task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}

		uc.logger.Info("recurring", fmt.Sprintf("generated task #%d from template #%d", id, rt.ID))
		out.Created = append(out.Created, task)
	}

	return out, nil
}
