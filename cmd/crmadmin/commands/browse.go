package commands

import (
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	var opts app.BrowseOptions

	cmd := &cobra.Command{
		Use:       "browse <resource>",
		Short:     "Page through products or users interactively",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"products", "users"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return c.app.Browse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Records per page (defaults to the configured page size)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Initial search filter")
	cmd.Flags().StringVar(&opts.Output, "output", "auto", "Rendering: auto, interactive or plain")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while browsing")
	return cmd
}
