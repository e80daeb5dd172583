package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// ImportTasksInput contains the parameters for bulk-importing tasks.
type ImportTasksInput struct {
	Path   string // YAML file with a list of task definitions
	DryRun bool   // Parse and validate without persisting
}

// ImportTasksOutput contains the parsed (and, unless dry-run, created) tasks.
type ImportTasksOutput struct {
	Tasks  []domain.Task
	DryRun bool
}

// taskDef is the YAML shape of one imported task.
type taskDef struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DueDate     string `yaml:"due"`
	Time        string `yaml:"time"`
	Color       string `yaml:"color"`
	Duration    int    `yaml:"duration"`
	Priority    int    `yaml:"priority"`
}

// ImportTasks is the use case for creating tasks from a YAML file.
type ImportTasks struct {
	newTask *NewTask
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(newTask *NewTask) *ImportTasks {
	return &ImportTasks{newTask: newTask}
}

// validate applies the same checks NewTask enforces, so a bad definition
// anywhere in the file is caught before any task is persisted.
func (d taskDef) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return domain.ErrEmptyTitle
	}
	if d.Duration < 0 {
		return domain.ErrNegativeDuration
	}
	if d.Priority != 0 && (d.Priority < 1 || d.Priority > 5) {
		return domain.ErrInvalidPriority
	}
	return nil
}

// Execute parses the file and creates one task per definition. With DryRun
// the definitions are validated but nothing is persisted.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	content, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var defs []taskDef
	if err := yaml.Unmarshal(content, &defs); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	for i, def := range defs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}

	out := &ImportTasksOutput{DryRun: in.DryRun}
	for i, def := range defs {
		priority := def.Priority
		if priority == 0 {
			priority = domain.DefaultPriority
		}
		task := domain.Task{
			Title:         def.Title,
			Description:   def.Description,
			DueDate:       def.DueDate,
			Time:          def.Time,
			Duration:      def.Duration,
			PriorityLevel: priority,
			Color:         def.Color,
		}

		if !in.DryRun {
			created, err := uc.newTask.Execute(ctx, NewTaskInput{
				Title:       def.Title,
				Description: def.Description,
				DueDate:     def.DueDate,
				Time:        def.Time,
				Color:       def.Color,
				Duration:    def.Duration,
				Priority:    def.Priority,
			})
			if err != nil {
				return nil, fmt.Errorf("task %d (%s): %w", i+1, def.Title, err)
			}
			task.ID = created.TaskID
		}
		out.Tasks = append(out.Tasks, task)
	}

	return out, nil
}
