package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// newDoneCommand creates the done command (and its reopen counterpart).
func newDoneCommand(c *app.Container) *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Mark a task completed",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id, Reopen: reopen}); err != nil {
				return err
			}

			verb := "Completed"
			if reopen {
				verb = "Reopened"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d\n", verb, id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "Mark the task incomplete again")
	return cmd
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}

// newEditCommand creates the edit command for partial updates.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		Time        string
		Color       string
		Duration    int
		Priority    int
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit fields of a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Edit fields of a task. Only flags that are set change anything;
pass an empty string to clear a field (e.g. --time "").`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			in := usecase.UpdateTaskInput{TaskID: id}
			if cmd.Flags().Changed("title") {
				in.Title = &opts.Title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &opts.Description
			}
			if cmd.Flags().Changed("due") {
				in.DueDate = &opts.Due
			}
			if cmd.Flags().Changed("time") {
				in.Time = &opts.Time
			}
			if cmd.Flags().Changed("color") {
				in.Color = &opts.Color
			}
			if cmd.Flags().Changed("duration") {
				in.Duration = &opts.Duration
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = &opts.Priority
			}

			uc := c.UpdateTaskUseCase()
			if err := uc.Execute(cmd.Context(), in); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "New clock time (HH:MM)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "New color tag")
	cmd.Flags().IntVar(&opts.Duration, "duration", 0, "New duration in minutes")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 0, "New priority 1-5")

	return cmd
}

// newImportCommand creates the import command for bulk YAML imports.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Create tasks from a YAML file",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Create tasks from a YAML file.

File format:
  - title: Morning run
    time: "07:00"
    duration: 45
    color: green
  - title: Pay rent
    due: 2025-09-01
    priority: 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Path:   args[0],
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, task := range out.Tasks {
				if out.DryRun {
					_, _ = fmt.Fprintf(w, "Task %d:\n", i+1)
				} else {
					_, _ = fmt.Fprintf(w, "Created task #%d:\n", task.ID)
				}
				_, _ = fmt.Fprintf(w, "  Title: %s\n", task.Title)
				if task.DueDate != "" {
					_, _ = fmt.Fprintf(w, "  Due: %s\n", task.DueDate)
				}
				if task.Time != "" {
					_, _ = fmt.Fprintf(w, "  Time: %s\n", task.Time)
				}
			}
			if out.DryRun {
				_, _ = fmt.Fprintf(w, "Dry run: %d task(s) parsed, nothing created\n", len(out.Tasks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and validate without creating tasks")
	return cmd
}
