package timeline

import (
	"slices"
	"strings"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// SortForTimeline orders a task snapshot for chronological display: timed
// tasks ascending by clock time, followed by untimed tasks ascending by
// due date with missing due dates last.
//
// Clock-time and calendar-date are different units, so the two partitions
// are sorted independently and concatenated rather than compared against
// each other through a single comparator. Both sorts are stable: ties keep
// their original relative order. The input slice is not modified.
func SortForTimeline(tasks []domain.Task) []domain.Task {
	timed := make([]domain.Task, 0, len(tasks))
	untimed := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsTimed() {
			timed = append(timed, t)
		} else {
			untimed = append(untimed, t)
		}
	}

	// Zero-padded "HH:MM" makes lexicographic order chronological.
	slices.SortStableFunc(timed, func(a, b domain.Task) int {
		return strings.Compare(a.Time, b.Time)
	})
	slices.SortStableFunc(untimed, compareDueDate)

	return append(timed, untimed...)
}

// compareDueDate orders tasks by due date, missing due dates last.
// Unparseable dates behave as missing.
func compareDueDate(a, b domain.Task) int {
	ad, aok := a.DueDay()
	bd, bok := b.DueDay()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return ad.Compare(bd)
}

// compareTimedFirst orders timed tasks before untimed ones and timed tasks
// ascending by clock time; untimed pairs compare equal so a stable sort
// preserves their relative order.
func compareTimedFirst(a, b domain.Task) int {
	at, bt := a.IsTimed(), b.IsTimed()
	switch {
	case at && !bt:
		return -1
	case !at && bt:
		return 1
	case at && bt:
		return strings.Compare(a.Time, b.Time)
	}
	return 0
}
