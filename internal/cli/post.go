package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/enumstatus/internal/blog"
)

// outcomeRow is the rendered result of a post write.
type outcomeRow struct {
	PostID  int64  `json:"post_id" yaml:"post_id"`
	Code    int64  `json:"code" yaml:"code"`
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
	Kind    string `json:"kind" yaml:"kind"`
}

// errStatusKind is returned when a write completes with an Error-kind status.
var errStatusKind = errors.New("operation reported an error status")

func newPostCmd(a *app) *cobra.Command {
	var p blog.Post

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Insert or update a blog post",
		Long: `Post inserts a new blog post, or updates the post with --id when it exists.

The outcome is printed with its declared message and kind. A post whose
topic does not exist is rejected with an Error-kind status and exit code 1.

Example:
  enumstatus post --title "First Post" --content "Hello" --topic 1
  enumstatus post --id 1 --title "Updated Post" --content "Hello again" --topic 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := store.UpsertPost(ctx, &p)
			if errors.Is(err, blog.ErrInvalidTitle) {
				return err
			}
			if err != nil {
				return sysErrorf("upsert post: %w", err)
			}
			return reportOutcome(cmd, a, p.ID, result)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&p.ID, "id", 0, "post ID to update (0 inserts a new post)")
	f.StringVar(&p.Title, "title", "", "post title (required)")
	f.StringVar(&p.Content, "content", "", "post content")
	f.Int64Var(&p.MainTopicID, "topic", 0, "main topic ID (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := store.DeletePost(ctx, id)
			if errors.Is(err, blog.ErrNotFound) {
				return fmt.Errorf("post %d not found", id)
			}
			if err != nil {
				return sysErrorf("delete post: %w", err)
			}
			return reportOutcome(cmd, a, id, result)
		},
	}
}

// reportOutcome renders result with its declaration. Error-kind results
// return errStatusKind after printing.
func reportOutcome(cmd *cobra.Command, a *app, postID int64, result blog.PostStatus) error {
	decl, err := blog.Describe(result)
	if err != nil {
		return sysErrorf("describe %s: %w", result, err)
	}
	row := outcomeRow{
		PostID:  postID,
		Code:    result.Code(),
		Status:  result.String(),
		Message: decl.Message,
		Kind:    decl.Kind.String(),
	}

	err = render(cmd.OutOrStdout(), a.output, row, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "post:\t%d\n", row.PostID)
		fmt.Fprintf(tw, "status:\t%s (code %d)\n", row.Status, row.Code)
		fmt.Fprintf(tw, "kind:\t%s\n", row.Kind)
		fmt.Fprintf(tw, "message:\t%s\n", row.Message)
	})
	if err != nil {
		return err
	}
	if blog.IsError(result) {
		return fmt.Errorf("%w: %s", errStatusKind, decl.Message)
	}
	return nil
}

func newLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the status log of post writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.StatusLog(ctx)
			if err != nil {
				return sysErrorf("read status log: %w", err)
			}

			return render(cmd.OutOrStdout(), a.output, entries, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "TIME\tPOST\tCODE\tKIND\tMESSAGE")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
						e.CreatedAt.Format(time.RFC3339), e.PostID, e.Code, e.Kind, e.Message)
				}
			})
		},
	}
}
