package commands

import (
	"fmt"
	"strings"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/app"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errInvalidStatus = zerr.New("status must be active or inactive")

// filterFlag maps a command line flag onto a list filter.
type filterFlag struct {
	flag   string
	filter string
	usage  string
}

// resourceCommands describes the subcommands of one resource.
type resourceCommands[T, F any] struct {
	resource domain.Resource
	short    string
	records  func() app.Records[T, F]
	columns  []string
	row      func(T) []string
	id       func(T) string
	filters  []filterFlag
	// fields registers the editable field flags on cmd and returns their reader.
	fields func(cmd *cobra.Command) func() F
}

func newResourceCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   rc.resource.String(),
		Short: rc.short,
	}
	cmd.AddCommand(
		newListCmd(c, rc),
		newLookupCmd(c, rc),
		newCreateCmd(c, rc),
		newUpdateCmd(c, rc),
		newDeleteCmd(c, rc),
		newStatusCmd(c, rc),
	)
	return cmd
}

func newListCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	var page, pageSize int
	values := make([]string, len(rc.filters))

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of " + rc.resource.String(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pageSize <= 0 {
				pageSize = c.app.Settings().PageSize
			}
			// WithFilter resets the page, so the page is applied last.
			state := domain.NewListState(pageSize)
			for i, f := range rc.filters {
				if cmd.Flags().Changed(f.flag) {
					state = state.WithFilter(f.filter, domain.FilterValue(values[i]))
				}
			}
			state = state.WithPage(page)

			result, err := rc.records().List(cmd.Context(), state)
			if err != nil {
				return err
			}
			if err := c.print(cmd, result, rc.columns, output.Rows(result.Items, rc.row)); err != nil {
				return err
			}
			if !c.json {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), style.Muted.Render(fmt.Sprintf(
					"page %d/%d · %d records", result.PageNumber, max(result.TotalPages, 1), result.TotalRecords,
				)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Records per page (defaults to the configured page size)")
	for i, f := range rc.filters {
		cmd.Flags().StringVar(&values[i], f.flag, "", f.usage)
	}
	return cmd
}

func newLookupCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	return &cobra.Command{
		Use:       "lookup <name>",
		Short:     "Show a dropdown list (" + strings.Join(rc.resource.Lookups(), ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: rc.resource.Lookups(),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := rc.records().Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(cmd, items, output.LookupColumns, output.Rows(items, output.LookupRow))
		},
	}
}

func newCreateCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		Args:  cobra.NoArgs,
	}
	fields := rc.fields(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		record, err := rc.records().Create(cmd.Context(), fields())
		if err != nil {
			return err
		}
		if err := c.print(cmd, record, rc.columns, [][]string{rc.row(*record)}); err != nil {
			return err
		}
		c.done(cmd, "created %s %s", rc.resource, rc.id(*record))
		return nil
	}
	return cmd
}

func newUpdateCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the editable fields of a record",
		Args:  cobra.ExactArgs(1),
	}
	fields := rc.fields(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		record, err := rc.records().Update(cmd.Context(), args[0], fields())
		if err != nil {
			return err
		}
		return c.print(cmd, record, rc.columns, [][]string{rc.row(*record)})
	}
	return cmd
}

func newDeleteCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rc.records().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.done(cmd, "deleted %s %s", rc.resource, args[0])
			return nil
		},
	}
}

func newStatusCmd[T, F any](c *CLI, rc resourceCommands[T, F]) *cobra.Command {
	return &cobra.Command{
		Use:       "status <id> active|inactive",
		Short:     "Activate or deactivate a record",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"active", "inactive"},
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			if err := rc.records().SetStatus(cmd.Context(), args[0], active); err != nil {
				return err
			}
			c.done(cmd, "%s %s is now %s", rc.resource, args[0], strings.ToLower(args[1]))
			return nil
		},
	}
}

func parseStatus(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "active":
		return true, nil
	case "inactive":
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(errInvalidStatus, "parse status"), "value", value)
	}
}

func productCommands(a Application) resourceCommands[domain.Product, domain.ProductInput] {
	return resourceCommands[domain.Product, domain.ProductInput]{
		resource: domain.ResourceProducts,
		short:    "Manage the product catalogue",
		records:  a.Products,
		columns:  output.ProductColumns,
		row:      output.ProductRow,
		id:       func(p domain.Product) string { return p.ID },
		filters: []filterFlag{
			{flag: "search", filter: "search", usage: "Match name or code"},
			{flag: "status", filter: "status", usage: "Filter by status"},
		},
		fields: func(cmd *cobra.Command) func() domain.ProductInput {
			var in domain.ProductInput
			f := cmd.Flags()
			f.StringVar(&in.Name, "name", "", "Product name")
			f.StringVar(&in.Code, "code", "", "Product code")
			f.StringVar(&in.CategoryID, "category", "", "Category id (see: products lookup categories)")
			f.StringVar(&in.UnitTypeID, "unit", "", "Unit type id (see: products lookup unit-types)")
			f.Float64Var(&in.Price, "price", 0, "Unit price")
			f.Float64Var(&in.TaxPercent, "tax", 0, "Tax percentage")
			f.StringVar(&in.Description, "description", "", "Free text description")
			f.BoolVar(&in.IsActive, "active", true, "Whether the product is active")
			return func() domain.ProductInput { return in }
		},
	}
}

func userCommands(a Application) resourceCommands[domain.User, domain.UserInput] {
	return resourceCommands[domain.User, domain.UserInput]{
		resource: domain.ResourceUsers,
		short:    "Manage the user directory",
		records:  a.Users,
		columns:  output.UserColumns,
		row:      output.UserRow,
		id:       func(u domain.User) string { return u.ID },
		filters: []filterFlag{
			{flag: "search", filter: "search", usage: "Match name or email"},
			{flag: "status", filter: "status", usage: "Filter by status"},
			{flag: "company", filter: "companyID", usage: "Filter by company id"},
			{flag: "role", filter: "roleID", usage: "Filter by role id"},
			{flag: "tenant", filter: "tenantID", usage: "Filter by tenant id"},
		},
		fields: func(cmd *cobra.Command) func() domain.UserInput {
			var in domain.UserInput
			f := cmd.Flags()
			f.StringVar(&in.FullName, "name", "", "Full name")
			f.StringVar(&in.Email, "email", "", "Email address")
			f.StringVar(&in.Phone, "phone", "", "Phone number in E.164 form")
			f.StringVar(&in.Password, "password", "", "Initial password (create only)")
			f.StringVar(&in.RoleID, "role", "", "Role id (see: users lookup roles)")
			f.StringVar(&in.TenantID, "tenant", "", "Tenant id")
			f.StringVar(&in.CompanyID, "company", "", "Company id")
			f.BoolVar(&in.IsActive, "active", true, "Whether the user is active")
			return func() domain.UserInput { return in }
		},
	}
}
