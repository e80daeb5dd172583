package domain

// GroupBy selects the grouping strategy for agenda views.
type GroupBy string

const (
	GroupByPriority GroupBy = "priority" // One bucket per priority level
	GroupByDueDate  GroupBy = "dueDate"  // Calendar-relative buckets (Today/Tomorrow/Overdue/...)
	GroupByColor    GroupBy = "color"    // One bucket per color tag
	GroupByNone     GroupBy = "none"     // Single bucket
)

// AllGroupBys returns all valid grouping strategies.
func AllGroupBys() []GroupBy {
	return []GroupBy{GroupByPriority, GroupByDueDate, GroupByColor, GroupByNone}
}

// Valid returns true if the value is a known grouping strategy.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByPriority, GroupByDueDate, GroupByColor, GroupByNone:
		return true
	}
	return false
}

// ParseGroupBy parses a grouping strategy from user input.
func ParseGroupBy(s string) (GroupBy, error) {
	g := GroupBy(s)
	if !g.Valid() {
		return "", ErrInvalidGroupBy
	}
	return g, nil
}

// SortBy selects the sort key for flat list views.
type SortBy string

const (
	SortByTitle     SortBy = "title"     // Case-insensitive title
	SortByDueDate   SortBy = "dueDate"   // Due date (absent sorts as epoch zero)
	SortByPriority  SortBy = "priority"  // Numeric priority level
	SortByCreatedAt SortBy = "createdAt" // Creation time (default)
)

// Valid returns true if the value is a known sort key.
func (s SortBy) Valid() bool {
	switch s {
	case SortByTitle, SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

// ParseSortBy parses a sort key from user input.
func ParseSortBy(s string) (SortBy, error) {
	k := SortBy(s)
	if !k.Valid() {
		return "", ErrInvalidSortBy
	}
	return k, nil
}

// Direction selects ascending or descending sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Valid returns true if the value is a known direction.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// ParseDirection parses a sort direction from user input.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}
