package domain

import (
	"strings"
	"time"
)

// RecurringTask is a weekly template that materializes into dated tasks.
// Fields are ordered to minimize memory padding.
type RecurringTask struct {
	Created       time.Time    `json:"created"`               // Creation time
	Updated       time.Time    `json:"updated"`               // Last modification time
	Title         string       `json:"title"`                 // Title (required)
	Description   string       `json:"description,omitempty"` // Description (optional)
	Time          string       `json:"time,omitempty"`        // Clock time "HH:MM" for generated tasks
	Color         string       `json:"color,omitempty"`       // Color tag for generated tasks
	Duration      int          `json:"duration,omitempty"`    // Duration in minutes for generated tasks
	PriorityLevel int          `json:"priorityLevel"`         // Priority rank 1..5
	Weekday       time.Weekday `json:"dayOfWeek"`             // Day of week the template fires on
	ID            int          `json:"-"`                     // Template ID (stored as map key, not in value)
	IsActive      bool         `json:"isActive"`              // Inactive templates never generate tasks
}

// RecurringTaskRepository manages recurring template persistence.
type RecurringTaskRepository interface {
	// GetRecurring retrieves a template by ID. Returns nil if not found.
	GetRecurring(id int) (*RecurringTask, error)

	// ListRecurring retrieves all templates, optionally only active ones.
	ListRecurring(activeOnly bool) ([]RecurringTask, error)

	// SaveRecurring creates or updates a template.
	SaveRecurring(rt *RecurringTask) error

	// DeleteRecurring removes a template by ID.
	DeleteRecurring(id int) error

	// NextRecurringID returns the next available template ID.
	NextRecurringID() (int, error)
}

// ParseWeekday parses a weekday name ("monday", "mon") into a time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, ErrInvalidWeekday
}
