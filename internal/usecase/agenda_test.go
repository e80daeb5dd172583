package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/testutil"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
)

func TestAgenda_DueDateGrouping(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "future", DueDate: "2024-03-20"}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "late", DueDate: "2024-03-10"}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "today", DueDate: "2024-03-15", Time: "09:00"}
	repo.Tasks[4] = &domain.Task{ID: 4, Title: "dateless"}

	uc := NewAgenda(repo, &testutil.MockClock{NowTime: fixedNow})
	out, err := uc.Execute(context.Background(), AgendaInput{GroupBy: domain.GroupByDueDate})
	require.NoError(t, err)
	require.Len(t, out.Groups, 4)

	// Today first, Overdue second, the rest in insertion order
	assert.Equal(t, timeline.TodayLabel(fixedNow), out.Groups[0].Label)
	assert.Equal(t, timeline.OverdueLabel, out.Groups[1].Label)

	total := 0
	for _, g := range out.Groups {
		total += len(g.Tasks)
	}
	assert.Equal(t, 4, total)
}

func TestAgenda_DefaultsToDueDate(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "x"}

	uc := NewAgenda(repo, &testutil.MockClock{NowTime: fixedNow})
	out, err := uc.Execute(context.Background(), AgendaInput{})
	require.NoError(t, err)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, timeline.NoDueDateLabel, out.Groups[0].Label)
}

func TestAgenda_InvalidGroupBy(t *testing.T) {
	uc := NewAgenda(testutil.NewMockTaskRepository(), &testutil.MockClock{NowTime: fixedNow})

	_, err := uc.Execute(context.Background(), AgendaInput{GroupBy: "status"})
	assert.ErrorIs(t, err, domain.ErrInvalidGroupBy)
}
