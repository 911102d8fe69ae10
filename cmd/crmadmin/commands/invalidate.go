package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInvalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "invalidate <resource>",
		Short:     "Mark every cached entry of a resource stale",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"products", "users"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Invalidate(args[0])
			if err != nil {
				return err
			}
			c.done(cmd, "invalidated %d %s entries", n, args[0])
			return nil
		},
	}
}
