package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTemplateNotFound = errors.New("recurring task not found")
	ErrInvalidWeekday   = errors.New("invalid weekday (expected a day name like monday or mon)")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidGroupBy   = errors.New("invalid group-by (expected priority, dueDate, color, or none)")
	ErrInvalidSortBy    = errors.New("invalid sort key (expected title, dueDate, priority, or createdAt)")
	ErrInvalidDirection = errors.New("invalid direction (expected asc or desc)")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 5")
	ErrNegativeDuration = errors.New("duration cannot be negative")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrNotInitialized   = errors.New("dailyflo not initialized (run 'dailyflo init' first)")
	ErrConfigExists     = errors.New("config file already exists")
)
