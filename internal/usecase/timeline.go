package usecase

import (
	"context"
	"fmt"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
)

// TimelineInput contains the parameters for the timeline view.
type TimelineInput struct {
	IncludeCompleted bool
}

// TimelineEntry is one task on the timeline with its derived display
// metrics. GapBand sizes the connector from the previous entry; the first
// entry and untimed entries carry the small band.
type TimelineEntry struct {
	Task         domain.Task
	TimeRange    string // "2:30 - 3:15 PM" or "2:30 PM", empty for untimed tasks
	GapMinutes   int    // Minutes since the previous timed entry
	GapBand      int    // Connector pixel band for the gap
	DurationBand int    // Pixel band for the task's own duration
	GapDefined   bool   // False for the first entry and untimed neighbors
}

// TimelineOutput contains the ordered timeline.
type TimelineOutput struct {
	Entries []TimelineEntry
}

// Timeline is the use case for the chronological timeline view.
type Timeline struct {
	tasks domain.TaskRepository
}

// NewTimeline creates a new Timeline use case.
func NewTimeline(tasks domain.TaskRepository) *Timeline {
	return &Timeline{tasks: tasks}
}

// Execute snapshots the store, orders it for the timeline, and derives
// connector gaps and formatted time ranges for each entry.
func (uc *Timeline) Execute(_ context.Context, in TimelineInput) (*TimelineOutput, error) {
	snapshot, err := uc.tasks.List(domain.TaskFilter{IncludeCompleted: in.IncludeCompleted})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	ordered := timeline.SortForTimeline(snapshot)
	entries := make([]TimelineEntry, 0, len(ordered))
	for i, task := range ordered {
		entry := TimelineEntry{
			Task:         task,
			DurationBand: timeline.DurationBand(task.Duration),
		}
		if task.IsTimed() {
			entry.TimeRange = timeline.FormatRange(task.Time, task.Duration)
		}
		if i > 0 {
			entry.GapMinutes, entry.GapDefined = timeline.MinutesBetween(ordered[i-1], task)
		}
		entry.GapBand = timeline.GapBand(entry.GapMinutes, entry.GapDefined)
		entries = append(entries, entry)
	}

	return &TimelineOutput{Entries: entries}, nil
}
