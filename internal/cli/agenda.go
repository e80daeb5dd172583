package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// newAgendaCommand creates the agenda command for grouped views.
func newAgendaCommand(c *app.Container) *cobra.Command {
	var opts struct {
		GroupBy string
		All     bool
	}

	cmd := &cobra.Command{
		Use:     "agenda",
		Short:   "Show tasks grouped into labeled buckets",
		GroupID: groupView,
		Long: `Show tasks grouped into labeled buckets.

With due-date grouping, today's bucket always renders first and the
Overdue bucket directly after it; remaining buckets keep the order in
which they first appeared.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groupBy := c.Config.GroupBy
			if opts.GroupBy != "" {
				var err error
				groupBy, err = domain.ParseGroupBy(opts.GroupBy)
				if err != nil {
					return err
				}
			}

			uc := c.AgendaUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AgendaInput{
				GroupBy:          groupBy,
				IncludeCompleted: opts.All || c.Config.ShowCompleted,
			})
			if err != nil {
				return err
			}

			if len(out.Groups) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}

			w := cmd.OutOrStdout()
			for i, group := range out.Groups {
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}
				_, _ = fmt.Fprintf(w, "%s (%d)\n", group.Label, len(group.Tasks))
				for _, task := range group.Tasks {
					mark := "[ ]"
					if task.IsCompleted {
						mark = "[x]"
					}
					line := fmt.Sprintf("  %s #%-3d %s", mark, task.ID, task.Title)
					if task.IsTimed() {
						line += " @ " + task.Time
					}
					_, _ = fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.GroupBy, "group-by", "g", "", "Grouping: priority, dueDate, color, none")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")

	return cmd
}
