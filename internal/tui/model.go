// Package tui implements the interactive timeline and agenda views
// using bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// View selects which derived view the TUI renders.
type View int

const (
	ViewTimeline View = iota
	ViewAgenda
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	container *app.Container
	err       error
	status    string

	entries []usecase.TimelineEntry
	groups  []timeline.Group

	keys   KeyMap
	styles Styles

	view    View
	cursor  int
	width   int
	height  int
	showAll bool
}

// NewModel creates a new TUI Model with the given container.
func NewModel(c *app.Container) *Model {
	accent := ""
	showAll := false
	if c != nil && c.Config != nil {
		accent = c.Config.AccentColor
		showAll = c.Config.ShowCompleted
	}
	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(accent),
		view:      ViewTimeline,
		showAll:   showAll,
	}
}

// Init loads the initial timeline.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd reloads the data behind the current view.
func (m *Model) refreshCmd() tea.Cmd {
	if m.view == ViewAgenda {
		return m.loadAgendaCmd()
	}
	return m.loadTimelineCmd()
}

func (m *Model) loadTimelineCmd() tea.Cmd {
	return func() tea.Msg {
		uc := m.container.TimelineUseCase()
		out, err := uc.Execute(context.Background(), usecase.TimelineInput{IncludeCompleted: m.showAll})
		if err != nil {
			return errMsg{err}
		}
		return timelineLoadedMsg{entries: out.Entries}
	}
}

func (m *Model) loadAgendaCmd() tea.Cmd {
	return func() tea.Msg {
		uc := m.container.AgendaUseCase()
		out, err := uc.Execute(context.Background(), usecase.AgendaInput{IncludeCompleted: m.showAll})
		if err != nil {
			return errMsg{err}
		}
		return agendaLoadedMsg{groups: out.Groups}
	}
}

func (m *Model) toggleDoneCmd() tea.Cmd {
	task := m.SelectedTask()
	if task == nil {
		return nil
	}
	id := task.ID
	reopen := task.IsCompleted
	refresh := m.refreshCmd()
	return func() tea.Msg {
		uc := m.container.CompleteTaskUseCase()
		if err := uc.Execute(context.Background(), usecase.CompleteTaskInput{TaskID: id, Reopen: reopen}); err != nil {
			return errMsg{err}
		}
		return refresh()
	}
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timelineLoadedMsg:
		m.entries = msg.entries
		m.err = nil
		m.status = ""
		m.clampCursor()
		return m, nil

	case agendaLoadedMsg:
		m.groups = msg.groups
		m.err = nil
		m.status = ""
		m.clampCursor()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		if m.view == ViewTimeline {
			m.view = ViewAgenda
		} else {
			m.view = ViewTimeline
		}
		m.cursor = 0
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Add):
		// Task creation stays on the CLI; point there instead of
		// opening a form.
		m.status = "Add tasks with: dailyflo add --title \"...\""
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleDoneCmd()

	case key.Matches(msg, m.keys.ShowAll):
		m.showAll = !m.showAll
		m.cursor = 0
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	}
	return m, nil
}

// itemCount returns the number of selectable rows in the current view.
func (m *Model) itemCount() int {
	if m.view == ViewAgenda {
		n := 0
		for _, g := range m.groups {
			n += len(g.Tasks)
		}
		return n
	}
	return len(m.entries)
}

func (m *Model) clampCursor() {
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	if m.view == ViewAgenda {
		i := 0
		for _, g := range m.groups {
			for j := range g.Tasks {
				if i == m.cursor {
					return &g.Tasks[j]
				}
				i++
			}
		}
		return nil
	}
	if m.cursor < len(m.entries) {
		return &m.entries[m.cursor].Task
	}
	return nil
}
