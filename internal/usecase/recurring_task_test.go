package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/testutil"
)

func newRecurringUC(repo *testutil.MockRecurringTaskRepository) *NewRecurringTask {
	return NewNewRecurringTask(repo, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})
}

func TestNewRecurringTask_Creates(t *testing.T) {
	repo := testutil.NewMockRecurringTaskRepository()
	uc := newRecurringUC(repo)

	out, err := uc.Execute(context.Background(), NewRecurringTaskInput{
		Title:   "Weekly review",
		Weekday: time.Friday,
		Time:    "16:00",
		Active:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.TemplateID)

	rt := repo.Templates[1]
	require.NotNil(t, rt)
	assert.Equal(t, "Weekly review", rt.Title)
	assert.Equal(t, time.Friday, rt.Weekday)
	assert.Equal(t, domain.DefaultPriority, rt.PriorityLevel)
	assert.True(t, rt.IsActive)
	assert.Equal(t, fixedNow, rt.Created)
}

func TestNewRecurringTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   NewRecurringTaskInput
		wantErr error
	}{
		{
			name:    "empty title",
			input:   NewRecurringTaskInput{Title: "  ", Weekday: time.Monday},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "negative duration",
			input:   NewRecurringTaskInput{Title: "x", Weekday: time.Monday, Duration: -10},
			wantErr: domain.ErrNegativeDuration,
		},
		{
			name:    "priority out of range",
			input:   NewRecurringTaskInput{Title: "x", Weekday: time.Monday, Priority: 6},
			wantErr: domain.ErrInvalidPriority,
		},
		{
			name:    "weekday out of range",
			input:   NewRecurringTaskInput{Title: "x", Weekday: time.Weekday(7)},
			wantErr: domain.ErrInvalidWeekday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newRecurringUC(testutil.NewMockRecurringTaskRepository())
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListRecurringTasks_ActiveOnly(t *testing.T) {
	repo := testutil.NewMockRecurringTaskRepository()
	repo.Templates[1] = &domain.RecurringTask{ID: 1, Title: "active", IsActive: true}
	repo.Templates[2] = &domain.RecurringTask{ID: 2, Title: "paused"}

	uc := NewListRecurringTasks(repo)

	out, err := uc.Execute(context.Background(), ListRecurringTasksInput{})
	require.NoError(t, err)
	assert.Len(t, out.Templates, 2)

	out, err = uc.Execute(context.Background(), ListRecurringTasksInput{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Templates, 1)
	assert.Equal(t, "active", out.Templates[0].Title)
}

func TestToggleRecurringTask(t *testing.T) {
	repo := testutil.NewMockRecurringTaskRepository()
	repo.Templates[1] = &domain.RecurringTask{ID: 1, Title: "x"}

	uc := NewToggleRecurringTask(repo, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	require.NoError(t, uc.Execute(context.Background(), ToggleRecurringTaskInput{TemplateID: 1, Active: true}))
	assert.True(t, repo.Templates[1].IsActive)
	assert.Equal(t, fixedNow, repo.Templates[1].Updated)

	require.NoError(t, uc.Execute(context.Background(), ToggleRecurringTaskInput{TemplateID: 1}))
	assert.False(t, repo.Templates[1].IsActive)

	err := uc.Execute(context.Background(), ToggleRecurringTaskInput{TemplateID: 99, Active: true})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestDeleteRecurringTask(t *testing.T) {
	repo := testutil.NewMockRecurringTaskRepository()
	repo.Templates[1] = &domain.RecurringTask{ID: 1, Title: "x"}

	uc := NewDeleteRecurringTask(repo, testutil.NopLogger{})

	require.NoError(t, uc.Execute(context.Background(), DeleteRecurringTaskInput{TemplateID: 1}))
	assert.Empty(t, repo.Templates)

	err := uc.Execute(context.Background(), DeleteRecurringTaskInput{TemplateID: 1})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
