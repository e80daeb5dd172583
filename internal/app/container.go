// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/infra/config"
	"github.com/harveym4n4lili/dailyflo/internal/infra/jsonstore"
	"github.com/harveym4n4lili/dailyflo/internal/infra/logging"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// Paths holds the application file locations.
type Paths struct {
	DataDir   string // Root of the dailyflo data directory
	StorePath string // Path to tasks.json
}

// DefaultDataDir resolves the data directory from XDG_DATA_HOME,
// falling back to ~/.local/share/dailyflo.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, domain.DataDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Recurring        domain.RecurringTaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader

	// Pointer fields
	Logger *logging.Logger

	// Configuration
	Paths  Paths
	Config *domain.Config
}

// New creates a new Container rooted at the given data directory.
// Pass "" to use the default XDG location.
func New(dataDir string) (*Container, error) {
	if dataDir == "" {
		var err error
		dataDir, err = DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}

	paths := Paths{
		DataDir:   dataDir,
		StorePath: domain.StorePath(dataDir),
	}

	configLoader := config.NewLoader(dataDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store := jsonstore.New(paths.StorePath)
	logger := logging.New(dataDir, logging.ParseLevel(cfg.LogLevel))

	return &Container{
		Tasks:            store,
		Recurring:        store,
		StoreInitializer: store,
		Clock:            domain.SystemClock{},
		ConfigLoader:     configLoader,
		Logger:           logger,
		Paths:            paths,
		Config:           cfg,
	}, nil
}

// NewTaskUseCase creates a NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase creates a ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// TimelineUseCase creates a Timeline use case.
func (c *Container) TimelineUseCase() *usecase.Timeline {
	return usecase.NewTimeline(c.Tasks)
}

// AgendaUseCase creates an Agenda use case.
func (c *Container) AgendaUseCase() *usecase.Agenda {
	return usecase.NewAgenda(c.Tasks, c.Clock)
}

// CompleteTaskUseCase creates a CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.Logger)
}

// UpdateTaskUseCase creates an UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase creates a DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ImportTasksUseCase creates an ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.NewTaskUseCase())
}

// NewRecurringTaskUseCase creates a NewRecurringTask use case.
func (c *Container) NewRecurringTaskUseCase() *usecase.NewRecurringTask {
	return usecase.NewNewRecurringTask(c.Recurring, c.Clock, c.Logger)
}

// ListRecurringTasksUseCase creates a ListRecurringTasks use case.
func (c *Container) ListRecurringTasksUseCase() *usecase.ListRecurringTasks {
	return usecase.NewListRecurringTasks(c.Recurring)
}

// ToggleRecurringTaskUseCase creates a ToggleRecurringTask use case.
func (c *Container) ToggleRecurringTaskUseCase() *usecase.ToggleRecurringTask {
	return usecase.NewToggleRecurringTask(c.Recurring, c.Clock, c.Logger)
}

// DeleteRecurringTaskUseCase creates a DeleteRecurringTask use case.
func (c *Container) DeleteRecurringTaskUseCase() *usecase.DeleteRecurringTask {
	return usecase.NewDeleteRecurringTask(c.Recurring, c.Logger)
}

// GenerateTasksUseCase creates a GenerateTasks use case.
func (c *Container) GenerateTasksUseCase() *usecase.GenerateTasks {
	return usecase.NewGenerateTasks(c.Tasks, c.Recurring, c.Clock, c.Logger)
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}
