package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/enumstatus/internal/blog"
	"github.com/mesh-intelligence/enumstatus/pkg/status"
)

// catalog is the registry the list and lookup commands read.
var catalog = blog.Statuses

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every declared status variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a, catalog)
		},
	}
}

func runList(cmd *cobra.Command, a *app, r *status.Registry) error {
	rows := make([]declarationRow, 0, r.Len())
	for v, decl := range r.All() {
		rows = append(rows, newDeclarationRow(v, decl))
	}

	return render(cmd.OutOrStdout(), a.output, rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "TYPE\tVARIANT\tKIND\tMESSAGE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Type, row.Variant, row.Kind, row.Message)
		}
	})
}
