package commands

import (
	"encoding/json"
	"fmt"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
	"github.com/spf13/cobra"
)

// print writes v as indented JSON when --json is set, otherwise as a table.
func (c *CLI) print(cmd *cobra.Command, v any, columns []string, rows [][]string) error {
	out := cmd.OutOrStdout()
	if c.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(out, output.Table(style.Header, columns, rows))
	return err
}

// done reports a completed write.
func (c *CLI) done(cmd *cobra.Command, format string, args ...any) {
	if c.json {
		return
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), style.Check+" "+format+"\n", args...)
}
