package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(nil)
	updated, _ := m.Update(timelineLoadedMsg{entries: []usecase.TimelineEntry{
		{Task: domain.Task{ID: 1, Title: "standup", Time: "09:00", Duration: 15}, TimeRange: "9:00 - 9:15 AM", GapBand: timeline.GapBandSmall},
		{Task: domain.Task{ID: 2, Title: "review", Time: "11:00", Duration: 30}, TimeRange: "11:00 - 11:30 AM", GapBand: timeline.GapBandLarge},
		{Task: domain.Task{ID: 3, Title: "groceries"}},
	}})
	return updated.(*Model)
}

func TestModelCursorMovement(t *testing.T) {
	m := loadedModel(t)
	require.Equal(t, 0, m.cursor)

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(*Model)
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(*Model)
	assert.Equal(t, 2, m.cursor, "cursor should stop at the last entry")

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)
}

func TestModelSelectedTask(t *testing.T) {
	m := loadedModel(t)
	task := m.SelectedTask()
	require.NotNil(t, task)
	assert.Equal(t, "standup", task.Title)

	m.cursor = 2
	task = m.SelectedTask()
	require.NotNil(t, task)
	assert.Equal(t, "groceries", task.Title)
}

func TestModelSelectedTaskAgenda(t *testing.T) {
	m := NewModel(nil)
	m.view = ViewAgenda
	updated, _ := m.Update(agendaLoadedMsg{groups: []timeline.Group{
		{Label: timeline.OverdueLabel, Tasks: []domain.Task{{ID: 1, Title: "late"}}},
		{Label: "15 Mar, Friday", Tasks: []domain.Task{{ID: 2, Title: "today a"}, {ID: 3, Title: "today b"}}},
	}})
	m = updated.(*Model)

	require.Equal(t, 3, m.itemCount())

	m.cursor = 2
	task := m.SelectedTask()
	require.NotNil(t, task)
	assert.Equal(t, "today b", task.Title)

	m.cursor = 5
	assert.Nil(t, m.SelectedTask())
}

func TestModelClampCursorAfterReload(t *testing.T) {
	m := loadedModel(t)
	m.cursor = 2

	updated, _ := m.Update(timelineLoadedMsg{entries: []usecase.TimelineEntry{
		{Task: domain.Task{ID: 1, Title: "only one"}},
	}})
	m = updated.(*Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModelQuit(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelErrMsg(t *testing.T) {
	m := loadedModel(t)
	updated, _ := m.Update(errMsg{errors.New("store locked")})
	m = updated.(*Model)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "store locked")
}

func TestModelAddShowsHint(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(*Model)
	assert.Contains(t, m.View(), "dailyflo add")

	updated, _ = m.Update(timelineLoadedMsg{entries: m.entries})
	m = updated.(*Model)
	assert.NotContains(t, m.View(), "dailyflo add", "reload clears the hint")
}

func TestModelWindowSize(t *testing.T) {
	m := loadedModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(*Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
