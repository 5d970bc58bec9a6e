package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// defaultTopics are seeded into an empty store.
var defaultTopics = []string{"Technology", "Lifestyle"}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the blog store",
		Long:  "Create the data directory and database schema, then seed the default topics into an empty store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Seed(ctx, defaultTopics...)
			if err != nil {
				return sysErrorf("seed topics: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "enumstatus initialized successfully")
			fmt.Fprintln(out, "  data:  ", store.Path())
			fmt.Fprintln(out, "  topics seeded:", n)
			return nil
		},
	}
}
