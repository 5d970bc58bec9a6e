package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/enumstatus/pkg/status"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <type> <variant>",
		Short: "Show the declaration of one status variant",
		Long: `Lookup prints the message and kind declared for a variant.

Types are named as "list" prints them (import path and type name) or by
the short "package.Type" form when only one declared type carries it.

Example:
  enumstatus lookup blog.PostStatus NewRecord
  enumstatus lookup blog.PostStatus UserInformationCouldNotBeVerified -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, a, catalog, args[0], args[1])
		},
	}
}

func runLookup(cmd *cobra.Command, a *app, r *status.Registry, typeName, name string) error {
	v, decl, err := r.Find(typeName, name)
	if errors.Is(err, status.ErrNotFound) {
		return fmt.Errorf("no declaration for %s.%s (declared: %s)", typeName, name, declaredNames(r))
	}
	if err != nil {
		return err
	}

	row := newDeclarationRow(v, decl)
	return render(cmd.OutOrStdout(), a.output, row, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "variant:\t%s.%s\n", row.Type, row.Variant)
		fmt.Fprintf(tw, "kind:\t%s (%s)\n", row.Kind, row.KindType)
		fmt.Fprintf(tw, "message:\t%s\n", row.Message)
	})
}

func declaredNames(r *status.Registry) string {
	names := make([]string, 0, r.Len())
	for _, v := range r.Variants() {
		names = append(names, v.String())
	}
	return strings.Join(names, ", ")
}
