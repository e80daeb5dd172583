package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/timeline"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// newTimelineCommand creates the timeline command.
func newTimelineCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Show tasks on a chronological timeline",
		GroupID: groupView,
		Long: `Show tasks on a chronological timeline.

Timed tasks come first in clock order; untimed tasks follow, ordered by
due date. Connector height between timed entries scales with the gap.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.TimelineUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.TimelineInput{
				IncludeCompleted: all || c.Config.ShowCompleted,
			})
			if err != nil {
				return err
			}

			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing planned.")
				return nil
			}

			w := cmd.OutOrStdout()
			for i, entry := range out.Entries {
				if i > 0 {
					for r := 0; r < connectorRows(entry.GapBand); r++ {
						_, _ = fmt.Fprintln(w, "  │")
					}
				}

				marker := "○"
				if entry.Task.IsCompleted {
					marker = "●"
				}
				label := entry.TimeRange
				if label == "" {
					label = orDash(entry.Task.DueDate)
				}
				_, _ = fmt.Fprintf(w, "  %s %-20s %s\n", marker, label, entry.Task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	return cmd
}

// connectorRows converts a gap pixel band to terminal rows (24px per row).
func connectorRows(band int) int {
	rows := band / timeline.GapBandSmall
	if rows < 1 {
		rows = 1
	}
	return rows
}
