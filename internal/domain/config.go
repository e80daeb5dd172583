package domain

// Config holds user-facing application settings.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings      []string  `toml:"-"`              // Non-fatal problems found while loading
	SortBy        SortBy    `toml:"sort_by"`        // Default sort key for list views
	Direction     Direction `toml:"direction"`      // Default sort direction
	GroupBy       GroupBy   `toml:"group_by"`       // Default grouping for agenda views
	LogLevel      string    `toml:"log_level"`      // debug, info, warn, error
	AccentColor   string    `toml:"accent_color"`   // Hex color for the TUI accent
	ShowCompleted bool      `toml:"show_completed"` // Include completed tasks in views
}

// NewDefaultConfig returns the built-in default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		SortBy:      SortByCreatedAt,
		Direction:   Ascending,
		GroupBy:     GroupByDueDate,
		LogLevel:    "info",
		AccentColor: "#6C5CE7",
	}
}

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"
