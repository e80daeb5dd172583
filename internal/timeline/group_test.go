package timeline

import (
	"testing"
	"time"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// A fixed reference clock: Friday 15 March 2024, 10:00 local.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

func TestGroupKey_DueDate(t *testing.T) {
	tests := []struct {
		name   string
		due    string
		expect string
	}{
		{"no due date", "", NoDueDateLabel},
		{"today", "2024-03-15", "15 Mar, Friday"},
		{"today with time component", "2024-03-15T22:00:00", "15 Mar, Friday"},
		{"tomorrow", "2024-03-16", TomorrowLabel},
		{"yesterday", "2024-03-14", OverdueLabel},
		{"long overdue", "2023-01-01", OverdueLabel},
		{"future day", "2024-03-18", "18 Mar, Monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := domain.Task{DueDate: tt.due}
			if got := GroupKey(task, domain.GroupByDueDate, testNow); got != tt.expect {
				t.Errorf("GroupKey(due=%q) = %q, want %q", tt.due, got, tt.expect)
			}
		})
	}
}

func TestGroupKey_OtherStrategies(t *testing.T) {
	task := domain.Task{PriorityLevel: 2, Color: "blue"}

	if got := GroupKey(task, domain.GroupByPriority, testNow); got != "Priority 2" {
		t.Errorf("priority key = %q", got)
	}
	if got := GroupKey(task, domain.GroupByColor, testNow); got != "Blue" {
		t.Errorf("color key = %q", got)
	}
	if got := GroupKey(task, domain.GroupByNone, testNow); got != AllTasksLabel {
		t.Errorf("none key = %q", got)
	}
}

func TestGroupKey_CompletionDoesNotMoveBuckets(t *testing.T) {
	done := domain.Task{DueDate: "2024-03-14", IsCompleted: true}
	open := domain.Task{DueDate: "2024-03-14"}

	if GroupKey(done, domain.GroupByDueDate, testNow) != GroupKey(open, domain.GroupByDueDate, testNow) {
		t.Error("completed task left its date bucket")
	}
}

func TestGroupTasks_InsertionOrderAndConservation(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Color: "red"},
		{ID: 2, Color: "blue"},
		{ID: 3, Color: "red"},
		{ID: 4, Color: "green"},
	}

	groups := GroupTasks(tasks, domain.GroupByColor, testNow)

	wantLabels := []string{"Red", "Blue", "Green"}
	if len(groups) != len(wantLabels) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantLabels))
	}
	total := 0
	for i, g := range groups {
		if g.Label != wantLabels[i] {
			t.Errorf("group %d label = %q, want %q (first-seen order)", i, g.Label, wantLabels[i])
		}
		total += len(g.Tasks)
	}
	if total != len(tasks) {
		t.Errorf("bucket members total %d, want %d", total, len(tasks))
	}
}

func TestGroupTasks_ConservationAllStrategies(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, DueDate: "2024-03-15", Time: "09:00", PriorityLevel: 1, Color: "red"},
		{ID: 2, DueDate: "2024-03-10", PriorityLevel: 2, Color: "blue"},
		{ID: 3, PriorityLevel: 1, Color: "red"},
		{ID: 4, DueDate: "2024-04-01", PriorityLevel: 5},
	}

	for _, by := range domain.AllGroupBys() {
		total := 0
		for _, g := range GroupTasks(tasks, by, testNow) {
			total += len(g.Tasks)
		}
		if total != len(tasks) {
			t.Errorf("groupBy %s: bucket members total %d, want %d", by, total, len(tasks))
		}
	}
}

func TestGroupTasks_TodayBucketTimedFirst(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, DueDate: "2024-03-15"},                // untimed
		{ID: 2, DueDate: "2024-03-15", Time: "14:00"},
		{ID: 3, DueDate: "2024-03-15"},                // untimed
		{ID: 4, DueDate: "2024-03-15", Time: "08:00"},
		{ID: 5, DueDate: "2024-03-16", Time: "23:00"}, // tomorrow, untouched
	}

	groups := GroupTasks(tasks, domain.GroupByDueDate, testNow)

	var today *Group
	for i := range groups {
		if groups[i].Label == TodayLabel(testNow) {
			today = &groups[i]
		}
	}
	if today == nil {
		t.Fatal("no today bucket")
	}
	wantIDs := []int{4, 2, 1, 3} // timed ascending, then untimed in input order
	for i, want := range wantIDs {
		if today.Tasks[i].ID != want {
			t.Errorf("today bucket position %d: got #%d, want #%d", i, today.Tasks[i].ID, want)
		}
	}
}

func TestGroupTasks_OtherBucketsKeepInsertionOrder(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, DueDate: "2024-03-14", Time: "18:00"},
		{ID: 2, DueDate: "2024-03-14", Time: "06:00"},
	}

	groups := GroupTasks(tasks, domain.GroupByDueDate, testNow)

	if len(groups) != 1 || groups[0].Label != OverdueLabel {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	// Only the today bucket is re-sorted; overdue keeps insertion order.
	if groups[0].Tasks[0].ID != 1 || groups[0].Tasks[1].ID != 2 {
		t.Error("overdue bucket was re-sorted")
	}
}

func TestSortGroups_Pinning(t *testing.T) {
	today := TodayLabel(testNow)
	groups := []Group{
		{Label: "Blue"},
		{Label: OverdueLabel},
		{Label: TomorrowLabel},
		{Label: today},
		{Label: "Green"},
	}

	got := SortGroups(groups, testNow)

	wantLabels := []string{today, OverdueLabel, "Blue", TomorrowLabel, "Green"}
	for i, want := range wantLabels {
		if got[i].Label != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Label, want)
		}
	}
	// Input order must be untouched.
	if groups[0].Label != "Blue" {
		t.Error("input slice was reordered")
	}
}

func TestSortGroups_NoSpecialBuckets(t *testing.T) {
	groups := []Group{{Label: "Priority 1"}, {Label: "Priority 3"}, {Label: "Priority 2"}}

	got := SortGroups(groups, testNow)

	for i, want := range []string{"Priority 1", "Priority 3", "Priority 2"} {
		if got[i].Label != want {
			t.Errorf("position %d: got %q, want %q (ordinary buckets keep order)", i, got[i].Label, want)
		}
	}
}

func TestSortGroups_OverdueWithoutToday(t *testing.T) {
	groups := []Group{{Label: TomorrowLabel}, {Label: OverdueLabel}}

	got := SortGroups(groups, testNow)

	if got[0].Label != OverdueLabel {
		t.Errorf("overdue should precede ordinary buckets, got %q first", got[0].Label)
	}
}
