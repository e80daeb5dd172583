// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a planned item managed by dailyflo.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created       time.Time `json:"created"`               // Creation time (store-assigned, monotonic)
	Updated       time.Time `json:"updated"`               // Last modification time
	CompletedAt   time.Time `json:"completedAt,omitzero"`  // When the task was completed
	Title         string    `json:"title"`                 // Title (required)
	Description   string    `json:"description,omitempty"` // Description (optional)
	DueDate       string    `json:"dueDate,omitempty"`     // ISO date or datetime (empty = no due date)
	Time          string    `json:"time,omitempty"`        // Clock time "HH:MM" (empty = untimed)
	Color         string    `json:"color,omitempty"`       // Color tag, used as a grouping discriminant
	Duration      int       `json:"duration,omitempty"`    // Duration in minutes (0 = no duration)
	PriorityLevel int       `json:"priorityLevel"`         // Priority rank 1..5
	RecurringID   int       `json:"recurringId,omitempty"` // Template that generated this task (0 = none)
	ID            int       `json:"-"`                     // Task ID (stored as map key, not in value)
	IsCompleted   bool      `json:"isCompleted"`           // Completion flag
	SoftDeleted   bool      `json:"softDeleted,omitempty"` // Deleted tasks stay in the store file
}

// DefaultPriority is assigned when a task is created without an explicit priority.
const DefaultPriority = 3

// IsTimed returns true if the task has a usable clock time.
func (t *Task) IsTimed() bool {
	return strings.TrimSpace(t.Time) != ""
}

// HasDueDate returns true if the task has a due date set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != ""
}

// DueDay parses the due date and truncates it to its local calendar day.
// The bool is false when the due date is absent or unparseable.
func (t *Task) DueDay() (time.Time, bool) {
	d, ok := ParseDueDate(t.DueDate)
	if !ok {
		return time.Time{}, false
	}
	return DayOf(d), true
}

// ParseDueDate parses an ISO date or datetime string in local time.
// The bool is false for empty or unparseable input.
func ParseDueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// DayOf truncates a time to the start of its local calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
