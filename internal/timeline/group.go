package timeline

import (
	"fmt"
	"slices"
	"time"
	"unicode"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// Bucket labels with fixed text. The label for "today" is date-dependent
// and produced by TodayLabel.
const (
	OverdueLabel   = "Overdue"
	TomorrowLabel  = "Tomorrow"
	NoDueDateLabel = "No Due Date"
	AllTasksLabel  = "All Tasks"
)

// Group is one labeled bucket of tasks. Buckets are kept as an ordered
// slice, not a map: downstream ordering depends on first-seen insertion
// order being preserved.
type Group struct {
	Label string
	Tasks []domain.Task
}

// GroupKey computes the bucket label for a task under the given strategy.
// Due-date labels are calendar-relative to now's local day; completion
// status never affects placement.
func GroupKey(t domain.Task, by domain.GroupBy, now time.Time) string {
	switch by {
	case domain.GroupByPriority:
		return fmt.Sprintf("Priority %d", t.PriorityLevel)
	case domain.GroupByColor:
		return capitalize(t.Color)
	case domain.GroupByDueDate:
		return dueDateLabel(t, now)
	}
	return AllTasksLabel
}

// dueDateLabel classifies a task's due date against now's calendar day.
func dueDateLabel(t domain.Task, now time.Time) string {
	due, ok := t.DueDay()
	if !ok {
		return NoDueDateLabel
	}
	today := domain.DayOf(now)
	switch {
	case due.Equal(today):
		return dayLabel(today)
	case due.Equal(today.AddDate(0, 0, 1)):
		return TomorrowLabel
	case due.Before(today):
		return OverdueLabel
	}
	return dayLabel(due)
}

// dayLabel renders a date as "2 Jan, Friday".
func dayLabel(d time.Time) string {
	return d.Format("2 Jan, Monday")
}

// TodayLabel returns the bucket label used for tasks due on now's day.
func TodayLabel(now time.Time) string {
	return dayLabel(now)
}

// GroupTasks buckets a task snapshot under the given strategy. Buckets
// appear in first-seen order and members keep insertion order, with one
// exception: under due-date grouping the today bucket is re-ordered
// timed-first ascending by clock time (its members all share a due date,
// so no date tiebreak applies; untimed members keep their relative order).
func GroupTasks(tasks []domain.Task, by domain.GroupBy, now time.Time) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, t := range tasks {
		key := GroupKey(t, by, now)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Label: key})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	if by == domain.GroupByDueDate {
		today := TodayLabel(now)
		for i := range groups {
			if groups[i].Label == today {
				slices.SortStableFunc(groups[i].Tasks, compareTimedFirst)
			}
		}
	}

	return groups
}

// SortGroups pins the today bucket first and the Overdue bucket directly
// after it. Every other pair of buckets compares equal, so the stable sort
// leaves their original (insertion) order untouched — that stability is
// load-bearing, not incidental. The input slice is not modified.
func SortGroups(groups []Group, now time.Time) []Group {
	today := TodayLabel(now)
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b Group) int {
		switch {
		case a.Label == today && b.Label == today:
			return 0
		case a.Label == today:
			return -1
		case b.Label == today:
			return 1
		case a.Label == OverdueLabel && b.Label == OverdueLabel:
			return 0
		case a.Label == OverdueLabel:
			return -1
		case b.Label == OverdueLabel:
			return 1
		}
		return 0
	})
	return out
}

// capitalize upper-cases the first rune of a color tag for display.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
