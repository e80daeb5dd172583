package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized checks if the store exists.
	IsInitialized() bool
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter.
	List(filter TaskFilter) ([]Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// TaskFilter specifies criteria for listing tasks.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Color            string // Filter by color tag (empty = all)
	Priority         int    // Filter by priority level (0 = all)
	IncludeCompleted bool   // Include completed tasks
}

// Clock abstracts time.Now for deterministic tests and calendar-relative
// classification. "Today" and "tomorrow" are always computed against the
// clock's local day at call time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local over global over defaults).
	Load() (*Config, error)
}

// Logger provides leveled, categorized logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
