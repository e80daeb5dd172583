package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
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
		Use:     "add",
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create a new task.

Examples:
  # An untimed task due on a date
  dailyflo add --title "Pay rent" --due 2025-09-01

  # A timed task with a duration
  dailyflo add --title "Gym" --time 07:30 --duration 60 --color green

  # High priority, no date
  dailyflo add --title "Call the bank" --priority 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				DueDate:     opts.Due,
				Time:        opts.Time,
				Color:       opts.Color,
				Duration:    opts.Duration,
				Priority:    opts.Priority,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Clock time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Color tag")
	cmd.Flags().IntVar(&opts.Duration, "duration", 0, "Duration in minutes")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 0, "Priority 1-5 (default 3)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
