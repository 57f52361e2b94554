package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <id>",
		Short: "Stop a task daemon and forget it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Stop(cmd.Context(), args[0])
		},
	}
}
