package timeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// SortTasks returns a new slice ordered by the selected field. Descending
// order flips the comparator rather than reversing the sorted slice, so
// ties resolve identically in both directions and the stable sort keeps
// their original relative order.
//
// Due-date mode treats a missing due date as epoch zero, which sorts it
// first ascending. This deliberately differs from SortForTimeline, where
// missing due dates sort last; the two call sites want different things.
func SortTasks(tasks []domain.Task, by domain.SortBy, dir domain.Direction) []domain.Task {
	out := slices.Clone(tasks)
	compare := comparatorFor(by)
	if dir == domain.Descending {
		asc := compare
		compare = func(a, b domain.Task) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func comparatorFor(by domain.SortBy) func(a, b domain.Task) int {
	switch by {
	case domain.SortByTitle:
		return func(a, b domain.Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case domain.SortByDueDate:
		return func(a, b domain.Task) int {
			return cmp.Compare(dueMillis(a), dueMillis(b))
		}
	case domain.SortByPriority:
		return func(a, b domain.Task) int {
			return cmp.Compare(a.PriorityLevel, b.PriorityLevel)
		}
	}
	return func(a, b domain.Task) int {
		return cmp.Compare(a.Created.UnixMilli(), b.Created.UnixMilli())
	}
}

// dueMillis extracts the due date as epoch milliseconds, 0 when absent or
// unparseable.
func dueMillis(t domain.Task) int64 {
	d, ok := domain.ParseDueDate(t.DueDate)
	if !ok {
		return 0
	}
	return d.UnixMilli()
}
