package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// newListCommand creates the list command for flat sorted views.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Sort      string
		Direction string
		Color     string
		Priority  int
		All       bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks sorted by a field",
		GroupID: groupView,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortBy := c.Config.SortBy
			if opts.Sort != "" {
				var err error
				sortBy, err = domain.ParseSortBy(opts.Sort)
				if err != nil {
					return err
				}
			}
			direction := c.Config.Direction
			if opts.Direction != "" {
				var err error
				direction, err = domain.ParseDirection(opts.Direction)
				if err != nil {
					return err
				}
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				SortBy:           sortBy,
				Direction:        direction,
				Color:            opts.Color,
				Priority:         opts.Priority,
				IncludeCompleted: opts.All || c.Config.ShowCompleted,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tPRI\tDUE\tTIME\tTITLE")
			for _, task := range out.Tasks {
				mark := ""
				if task.IsCompleted {
					mark = " (done)"
				}
				_, _ = fmt.Fprintf(w, "%d\tP%d\t%s\t%s\t%s%s\n",
					task.ID, task.PriorityLevel, orDash(task.DueDate), orDash(task.Time), task.Title, mark)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort key: title, dueDate, priority, createdAt")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "Sort direction: asc or desc")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Only tasks with this color tag")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 0, "Only tasks with this priority")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")

	return cmd
}

// orDash substitutes a dash for empty display values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
