// Package commands implements the CLI commands for crmadmin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/app"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/build"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for crmadmin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	json    bool
}

// Application represents the application logic interface.
type Application interface {
	Settings() domain.Settings
	Products() app.Records[domain.Product, domain.ProductInput]
	Users() app.Records[domain.User, domain.UserInput]
	Invalidate(resource string) (int, error)
	Browse(ctx context.Context, resource string, opts app.BrowseOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "crmadmin",
		Short:         "Browse and edit CRM products and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lipgloss.SetColorProfile(output.New(cmd.OutOrStdout()).Profile)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Print raw records as JSON")

	rootCmd.AddCommand(newResourceCmd(c, productCommands(a)))
	rootCmd.AddCommand(newResourceCmd(c, userCommands(a)))
	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newInvalidateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
