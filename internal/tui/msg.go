package tui

import (
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// timelineLoadedMsg carries a refreshed timeline snapshot.
type timelineLoadedMsg struct {
	entries []usecase.TimelineEntry
}

// agendaLoadedMsg carries a refreshed agenda snapshot.
type agendaLoadedMsg struct {
	groups []timeline.Group
}

// errMsg carries an error from a background command.
type errMsg struct {
	err error
}
