package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/testutil"
)

const importFixture = `- title: Morning run
  time: "07:00"
  duration: 45
  color: green
- title: Pay rent
  due: 2024-04-01
  priority: 1
`

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportTasks_CreatesTasks(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(newTaskUC(repo))

	out, err := uc.Execute(context.Background(), ImportTasksInput{Path: writeImportFile(t, importFixture)})
	require.NoError(t, err)

	require.Len(t, out.Tasks, 2)
	assert.Len(t, repo.Tasks, 2)
	assert.Equal(t, "Morning run", repo.Tasks[1].Title)
	assert.Equal(t, "07:00", repo.Tasks[1].Time)
	assert.Equal(t, 1, repo.Tasks[2].PriorityLevel)
}

func TestImportTasks_DryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(newTaskUC(repo))

	out, err := uc.Execute(context.Background(), ImportTasksInput{
		Path:   writeImportFile(t, importFixture),
		DryRun: true,
	})
	require.NoError(t, err)

	assert.Len(t, out.Tasks, 2)
	assert.True(t, out.DryRun)
	assert.Empty(t, repo.Tasks, "dry-run must not persist")
}

func TestImportTasks_MissingTitle(t *testing.T) {
	uc := NewImportTasks(newTaskUC(testutil.NewMockTaskRepository()))

	_, err := uc.Execute(context.Background(), ImportTasksInput{
		Path: writeImportFile(t, "- due: 2024-04-01\n"),
	})
	assert.Error(t, err)
}

func TestImportTasks_InvalidPriorityCaughtInDryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(newTaskUC(repo))

	fixture := "- title: ok\n- title: bad\n  priority: 9\n"
	_, err := uc.Execute(context.Background(), ImportTasksInput{
		Path:   writeImportFile(t, fixture),
		DryRun: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, repo.Tasks)
}

func TestImportTasks_BadEntryPersistsNothing(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(newTaskUC(repo))

	fixture := "- title: ok\n- title: bad\n  duration: -5\n"
	_, err := uc.Execute(context.Background(), ImportTasksInput{
		Path: writeImportFile(t, fixture),
	})
	assert.ErrorIs(t, err, domain.ErrNegativeDuration)
	assert.Empty(t, repo.Tasks, "a bad definition must fail the import before any task is created")
}

func TestImportTasks_MalformedYAML(t *testing.T) {
	uc := NewImportTasks(newTaskUC(testutil.NewMockTaskRepository()))

	_, err := uc.Execute(context.Background(), ImportTasksInput{
		Path: writeImportFile(t, "title: [unclosed\n"),
	})
	assert.Error(t, err)
}

func TestImportTasks_FileMissing(t *testing.T) {
	uc := NewImportTasks(newTaskUC(testutil.NewMockTaskRepository()))

	_, err := uc.Execute(context.Background(), ImportTasksInput{Path: "/nonexistent/tasks.yaml"})
	assert.Error(t, err)
}

func testTask(id int, title string, priority int) *domain.Task {
	return &domain.Task{ID: id, Title: title, PriorityLevel: priority}
}

func TestListTasks_SortAndFilter(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = testTask(1, "beta", 2)
	repo.Tasks[2] = testTask(2, "alpha", 1)
	repo.Tasks[3] = testTask(3, "gamma", 1)

	uc := NewListTasks(repo)
	out, err := uc.Execute(context.Background(), ListTasksInput{
		SortBy:    "title",
		Direction: "asc",
	})
	require.NoError(t, err)

	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "alpha", out.Tasks[0].Title)
	assert.Equal(t, "beta", out.Tasks[1].Title)
	assert.Equal(t, "gamma", out.Tasks[2].Title)

	out, err = uc.Execute(context.Background(), ListTasksInput{Priority: 1})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
}
