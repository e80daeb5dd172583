package usecase

import (
	"context"
	"fmt"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
)

// AgendaInput contains the parameters for the grouped agenda view.
type AgendaInput struct {
	GroupBy          domain.GroupBy // Grouping strategy (empty = dueDate)
	IncludeCompleted bool
}

// AgendaOutput contains the ordered group list.
type AgendaOutput struct {
	Groups []timeline.Group
}

// Agenda is the use case for grouped list views.
type Agenda struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAgenda creates a new Agenda use case.
func NewAgenda(tasks domain.TaskRepository, clock domain.Clock) *Agenda {
	return &Agenda{tasks: tasks, clock: clock}
}

// Execute snapshots the store, buckets it under the grouping strategy, and
// pins the today/overdue buckets to the front.
func (uc *Agenda) Execute(_ context.Context, in AgendaInput) (*AgendaOutput, error) {
	groupBy := in.GroupBy
	if groupBy == "" {
		groupBy = domain.GroupByDueDate
	}
	if !groupBy.Valid() {
		return nil, domain.ErrInvalidGroupBy
	}

	snapshot, err := uc.tasks.List(domain.TaskFilter{IncludeCompleted: in.IncludeCompleted})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	groups := timeline.GroupTasks(snapshot, groupBy, now)
	return &AgendaOutput{Groups: timeline.SortGroups(groups, now)}, nil
}
