// Package cli provides the command-line interface for dailyflo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// NewRootCommand creates the root command for dailyflo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dailyflo",
		Short: "Daily task planner CLI",
		Long: `dailyflo is a local daily task planner.

Tasks carry an optional due date, an optional clock time, a duration,
a priority, and a color tag. Views derive from the same task store:
a chronological timeline, grouped agenda lists, and flat sorted lists.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c == nil || c.Config == nil {
				return
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newAddCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newRemoveCommand(c),
		newImportCommand(c),
		newRecurCommand(c),
		newListCommand(c),
		newTimelineCommand(c),
		newAgendaCommand(c),
		newTUICommand(c),
	)

	return root
}
