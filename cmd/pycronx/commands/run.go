package commands

import (
	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/spf13/cobra"
)

const invocationUsage = "<interpreter> <script> <kind> <arg> [<arg2>] <icon> <yes|no>"

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--id ID] " + invocationUsage,
		Short: "Run a task daemon in the foreground",
		Long: `Run a task daemon in the foreground until it is stopped.

Schedule kinds:
  every_seconds N, every_minutes N, every_hours N, every_days N
  daily_at HH:MM
  weekly_at <weekday> HH:MM

The icon is "none", "random" or a path to an image, relative paths
resolving against the icons directory.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrMissingArguments
			}
			id, _ := cmd.Flags().GetString("id")
			return c.app.RunDaemon(cmd.Context(), id, args)
		},
	}
	cmd.Flags().String("id", "", "Task id assigned by the manager (a new one is generated when empty)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
