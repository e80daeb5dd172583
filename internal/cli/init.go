package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harveym4n4lili/dailyflo/internal/app"
	"github.com/harveym4n4lili/dailyflo/internal/domain"
	"github.com/harveym4n4lili/dailyflo/internal/infra/config"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Initialize the task store and config",
		GroupID: groupSetup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.StoreInitializer.Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			loader := config.NewLoader(c.Paths.DataDir)
			path, err := loader.WriteDefault()
			if err != nil && !errors.Is(err, domain.ErrConfigExists) {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized dailyflo in %s\n", c.Paths.DataDir)
			if errors.Is(err, domain.ErrConfigExists) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already present at %s\n", path)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			}
			return nil
		},
	}
}
