package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/usecase"
)

// newRecurCommand creates the recur command and its subcommands for
// managing weekly recurring templates.
func newRecurCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recur",
		Short:   "Manage weekly recurring tasks",
		GroupID: groupTask,
		Long: `Manage weekly recurring tasks.

A recurring task is a template tied to a weekday. 'recur run' turns every
active template matching today's weekday into a dated task; running it
again the same day creates nothing new.`,
	}

	cmd.AddCommand(
		newRecurAddCommand(c),
		newRecurListCommand(c),
		newRecurEnableCommand(c, true),
		newRecurEnableCommand(c, false),
		newRecurRemoveCommand(c),
		newRecurRunCommand(c),
	)
	return cmd
}

func newRecurAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Weekday     string
		Time        string
		Color       string
		Duration    int
		Priority    int
		Active      bool
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a recurring template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			weekday, err := domain.ParseWeekday(opts.Weekday)
			if err != nil {
				return err
			}

			uc := c.NewRecurringTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewRecurringTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Time:        opts.Time,
				Color:       opts.Color,
				Duration:    opts.Duration,
				Priority:    opts.Priority,
				Weekday:     weekday,
				Active:      opts.Active,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created recurring template #%d (%s)\n", out.TemplateID, weekday)
			if !opts.Active {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Template is inactive; enable it with 'dailyflo recur enable %d'\n", out.TemplateID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Template title (required)")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Template description")
	cmd.Flags().StringVarP(&opts.Weekday, "weekday", "w", "", "Day of week, e.g. monday (required)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Clock time (HH:MM) for generated tasks")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Color tag for generated tasks")
	cmd.Flags().IntVar(&opts.Duration, "duration", 0, "Duration in minutes for generated tasks")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 0, "Priority 1-5 (default 3)")
	cmd.Flags().BoolVar(&opts.Active, "active", false, "Activate the template immediately")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("weekday")

	return cmd
}

func newRecurListCommand(c *app.Container) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recurring templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListRecurringTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListRecurringTasksInput{ActiveOnly: activeOnly})
			if err != nil {
				return err
			}

			if len(out.Templates) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recurring templates.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tDAY\tPRI\tTIME\tACTIVE\tTITLE")
			for _, rt := range out.Templates {
				active := "no"
				if rt.IsActive {
					active = "yes"
				}
				_, _ = fmt.Fprintf(w, "%d\t%s\tP%d\t%s\t%s\t%s\n",
					rt.ID, rt.Weekday, rt.PriorityLevel, orDash(rt.Time), active, rt.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active templates")
	return cmd
}

func newRecurEnableCommand(c *app.Container, enable bool) *cobra.Command {
	use, short := "enable <id>", "Activate a recurring template"
	if !enable {
		use, short = "disable <id>", "Pause a recurring template"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.ToggleRecurringTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.ToggleRecurringTaskInput{TemplateID: id, Active: enable}); err != nil {
				return err
			}

			state := "Enabled"
			if !enable {
				state = "Disabled"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s template #%d\n", state, id)
			return nil
		},
	}
}

func newRecurRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a recurring template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteRecurringTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteRecurringTaskInput{TemplateID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted template #%d\n", id)
			return nil
		},
	}
}

func newRecurRunCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate today's tasks from active templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GenerateTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Created) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to generate.")
				return nil
			}
			for _, task := range out.Created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", task.ID, task.Title)
			}
			return nil
		},
	}
}
