package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start " + invocationUsage,
		Short: "Start a task daemon in the background and register it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			rec, err := c.app.Start(cmd.Context(), args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
			return nil
		},
	}
}
