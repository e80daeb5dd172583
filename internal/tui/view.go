package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harveym4n4lili/dailyflo/internal/timeline"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// pxPerRow converts engine pixel bands to terminal rows.
const pxPerRow = timeline.GapBandSmall

// View renders the current view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorText.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.view == ViewAgenda {
		b.WriteString(m.viewAgenda())
	} else {
		b.WriteString(m.viewTimeline())
	}

	if m.status != "" {
		b.WriteString(m.styles.Footer.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := "TIMELINE"
	if m.view == ViewAgenda {
		title = "AGENDA"
	}
	return m.styles.Header.Render(m.styles.HeaderText.Render("dailyflo · " + title))
}

// viewTimeline renders timed entries in clock order with connectors whose
// height scales with the gap band, then the untimed tail.
func (m *Model) viewTimeline() string {
	if len(m.entries) == 0 {
		return m.styles.Footer.Render("Nothing planned. Add a task with 'dailyflo add'.")
	}

	var b strings.Builder
	for i, entry := range m.entries {
		if i > 0 {
			rows := entry.GapBand / pxPerRow
			if rows < 1 {
				rows = 1
			}
			for r := 0; r < rows; r++ {
				b.WriteString(m.styles.Connector.Render("  │"))
				b.WriteString("\n")
			}
		}
		b.WriteString(m.renderEntry(entry, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderEntry(entry usecase.TimelineEntry, selected bool) string {
	task := entry.Task

	cursor := " "
	if selected {
		cursor = ">"
	}

	marker := "○"
	if task.IsCompleted {
		marker = "●"
	}

	label := entry.TimeRange
	if label == "" {
		if task.HasDueDate() {
			label = task.DueDate
		} else {
			label = "someday"
		}
	}
	label = fmt.Sprintf("%-18s", label)

	title := m.truncate(task.Title, 24)

	titleStyle := m.styles.TaskNormal
	switch {
	case task.IsCompleted:
		titleStyle = m.styles.TaskDone
	case selected:
		titleStyle = m.styles.TaskSelected
	}

	line := " " + m.styles.CursorSelected.Render(cursor) + " " + marker + " " +
		m.styles.TaskTime.Render(label) + " " + titleStyle.Render(title)
	return line
}

// viewAgenda renders the pinned group list.
func (m *Model) viewAgenda() string {
	if len(m.groups) == 0 {
		return m.styles.Footer.Render("No tasks.")
	}

	var b strings.Builder
	row := 0
	for i, group := range m.groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.GroupHeaderLabel.Render(group.Label))
		b.WriteString(" ")
		b.WriteString(m.styles.GroupHeaderLine.Render(strings.Repeat("─", m.groupLineWidth(group.Label))))
		b.WriteString("\n")

		for _, task := range group.Tasks {
			selected := row == m.cursor

			cursor := " "
			if selected {
				cursor = ">"
			}
			mark := "[ ]"
			if task.IsCompleted {
				mark = "[x]"
			}

			titleStyle := m.styles.TaskNormal
			switch {
			case task.IsCompleted:
				titleStyle = m.styles.TaskDone
			case selected:
				titleStyle = m.styles.TaskSelected
			}

			line := " " + m.styles.CursorSelected.Render(cursor) + " " + mark + " " +
				titleStyle.Render(m.truncate(task.Title, 32))
			if task.IsTimed() {
				line += " " + m.styles.TaskTime.Render("@ "+task.Time)
			}
			b.WriteString(line)
			b.WriteString("\n")
			row++
		}
	}
	return b.String()
}

func (m *Model) groupLineWidth(label string) int {
	width := 32 - runewidth.StringWidth(label)
	if width < 4 {
		width = 4
	}
	return width
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(
		m.styles.FooterKey.Render("j/k") + " nav  " +
			m.styles.FooterKey.Render("a") + " add  " +
			m.styles.FooterKey.Render("tab") + " view  " +
			m.styles.FooterKey.Render("x") + " done  " +
			m.styles.FooterKey.Render("c") + " completed  " +
			m.styles.FooterKey.Render("r") + " refresh  " +
			m.styles.FooterKey.Render("q") + " quit",
	)
}

func (m *Model) truncate(s string, max int) string {
	if m.width > 0 && m.width-30 > max {
		max = m.width - 30
	}
	if runewidth.StringWidth(s) > max {
		return runewidth.Truncate(s, max-3, "...")
	}
	return s
}
