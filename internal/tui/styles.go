package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	Connector lipgloss.Color
	GroupLine lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Connector: lipgloss.Color("#636E72"),
	GroupLine: lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	HeaderText lipgloss.Style

	TaskNormal     lipgloss.Style
	TaskSelected   lipgloss.Style
	TaskDone       lipgloss.Style
	TaskTime       lipgloss.Style
	TaskTitle      lipgloss.Style
	CursorSelected lipgloss.Style

	Connector lipgloss.Style

	GroupHeaderLine  lipgloss.Style
	GroupHeaderLabel lipgloss.Style

	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	ErrorText lipgloss.Style
}

// DefaultStyles returns the default styles, accented with the given color.
func DefaultStyles(accent string) Styles {
	primary := Colors.Primary
	if accent != "" {
		primary = lipgloss.Color(accent)
	}

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header:     lipgloss.NewStyle().PaddingBottom(1),
		HeaderText: lipgloss.NewStyle().Foreground(primary).Bold(true),

		TaskNormal:     lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TaskSelected:   lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		TaskDone:       lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		TaskTime:       lipgloss.NewStyle().Foreground(Colors.Secondary),
		TaskTitle:      lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		CursorSelected: lipgloss.NewStyle().Foreground(primary).Bold(true),

		Connector: lipgloss.NewStyle().Foreground(Colors.Connector),

		GroupHeaderLine:  lipgloss.NewStyle().Foreground(Colors.GroupLine),
		GroupHeaderLabel: lipgloss.NewStyle().Foreground(primary).Bold(true),

		Footer:    lipgloss.NewStyle().Foreground(Colors.Muted),
		FooterKey: lipgloss.NewStyle().Foreground(Colors.Secondary),
		ErrorText: lipgloss.NewStyle().Foreground(Colors.Error),
	}
}
