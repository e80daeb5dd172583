package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// NewRecurringTaskInput contains the parameters for creating a recurring
// template.
type NewRecurringTaskInput struct {
	Title       string
	Description string
	Time        string // "HH:MM", empty = untimed
	Color       string
	Duration    int          // minutes
	Priority    int          // 0 = use default
	Weekday     time.Weekday // Day of week the template fires on
	Active      bool
}

// NewRecurringTaskOutput contains the result of creating a template.
type NewRecurringTaskOutput struct {
	TemplateID int
}

// NewRecurringTask is the use case for creating a recurring template.
type NewRecurringTask struct {
	recurring domain.RecurringTaskRepository
	clock     domain.Clock
	logger    domain.Logger
}

// NewNewRecurringTask creates a new NewRecurringTask use case.
func NewNewRecurringTask(recurring domain.RecurringTaskRepository, clock domain.Clock, logger domain.Logger) *NewRecurringTask {
	return &NewRecurringTask{recurring: recurring, clock: clock, logger: logger}
}

// Execute validates the input and persists a new template.
func (uc *NewRecurringTask) Execute(_ context.Context, in NewRecurringTaskInput) (*NewRecurringTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Duration < 0 {
		return nil, domain.ErrNegativeDuration
	}
	if in.Weekday < time.Sunday || in.Weekday > time.Saturday {
		return nil, domain.ErrInvalidWeekday
	}

	priority := in.Priority
	if priority == 0 {
		priority = domain.DefaultPriority
	}
	if priority < 1 || priority > 5 {
		return nil, domain.ErrInvalidPriority
	}

	id, err := uc.recurring.NextRecurringID()
	if err != nil {
		return nil, fmt.Errorf("allocate template ID: %w", err)
	}

	now := uc.clock.Now()
	rt := &domain.RecurringTask{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Time:          in.Time,
		Duration:      in.Duration,
		PriorityLevel: priority,
		Color:         in.Color,
		Weekday:       in.Weekday,
		IsActive:      in.Active,
		Created:       now,
		Updated:       now,
	}
	if err := uc.recurring.SaveRecurring(rt); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}

	uc.logger.Info("recurring", fmt.Sprintf("created template #%d: %s (%s)", id, in.Title, in.Weekday))
	return &NewRecurringTaskOutput{TemplateID: id}, nil
}

// ListRecurringTasksInput contains the parameters for listing templates.
type ListRecurringTasksInput struct {
	ActiveOnly bool
}

// ListRecurringTasksOutput contains the template list.
type ListRecurringTasksOutput struct {
	Templates []domain.RecurringTask
}

// ListRecurringTasks is the use case for listing recurring templates.
type ListRecurringTasks struct {
	recurring domain.RecurringTaskRepository
}

// NewListRecurringTasks creates a new ListRecurringTasks use case.
func NewListRecurringTasks(recurring domain.RecurringTaskRepository) *ListRecurringTasks {
	return &ListRecurringTasks{recurring: recurring}
}

// Execute returns the stored templates.
func (uc *ListRecurringTasks) Execute(_ context.Context, in ListRecurringTasksInput) (*ListRecurringTasksOutput, error) {
	templates, err := uc.recurring.ListRecurring(in.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return &ListRecurringTasksOutput{Templates: templates}, nil
}

// ToggleRecurringTaskInput contains the parameters for activating or
// pausing a template.
type ToggleRecurringTaskInput struct {
	TemplateID int
	Active     bool
}

// ToggleRecurringTask is the use case for switching a template on or off.
type ToggleRecurringTask struct {
	recurring domain.RecurringTaskRepository
	clock     domain.Clock
	logger    domain.Logger
}

// NewToggleRecurringTask creates a new ToggleRecurringTask use case.
func NewToggleRecurringTask(recurring domain.RecurringTaskRepository, clock domain.Clock, logger domain.Logger) *ToggleRecurringTask {
	return &ToggleRecurringTask{recurring: recurring, clock: clock, logger: logger}
}

// Execute flips the template's active flag.
func (uc *ToggleRecurringTask) Execute(_ context.Context, in ToggleRecurringTaskInput) error {
	rt, err := uc.recurring.GetRecurring(in.TemplateID)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}
	if rt == nil {
		return domain.ErrTemplateNotFound
	}

	rt.IsActive = in.Active
	rt.Updated = uc.clock.Now()
	if err := uc.recurring.SaveRecurring(rt); err != nil {
		return fmt.Errorf("save template: %w", err)
	}

	state := "paused"
	if in.Active {
		state = "activated"
	}
	uc.logger.Info("recurring", fmt.Sprintf("%s template #%d", state, in.TemplateID))
	return nil
}

// DeleteRecurringTaskInput contains the parameters for deleting a template.
type DeleteRecurringTaskInput struct {
	TemplateID int
}

// DeleteRecurringTask is the use case for deleting a recurring template.
type DeleteRecurringTask struct {
	recurring domain.RecurringTaskRepository
	logger    domain.Logger
}

// NewDeleteRecurringTask creates a new DeleteRecurringTask use case.
func NewDeleteRecurringTask(recurring domain.RecurringTaskRepository, logger domain.Logger) *DeleteRecurringTask {
	return &DeleteRecurringTask{recurring: recurring, logger: logger}
}

// Execute removes the template. Tasks it already generated stay.
func (uc *DeleteRecurringTask) Execute(_ context.Context, in DeleteRecurringTaskInput) error {
	if err := uc.recurring.DeleteRecurring(in.TemplateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	uc.logger.Info("recurring", fmt.Sprintf("deleted template #%d", in.TemplateID))
	return nil
}
