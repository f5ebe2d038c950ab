package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

// newCommentCommand creates the comment command for adding a comment to a task.
func newCommentCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "comment <id> <message>",
		Short: "Add a comment to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddCommentUseCase().Execute(cmd.Context(), usecase.AddCommentInput{
				TaskID:  args[0],
				Message: args[1],
				Author:  author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added comment to task %s as %s\n", args[0], out.Comment.Author)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Comment author (default: config or git user)")

	return cmd
}

// newSubtaskCommand creates the subtask command group.
func newSubtaskCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage a task's checklist",
		Long: `Add, toggle and remove checklist items. Items are referenced by id
or by their 1-based position as shown by 'board show'.`,
	}
	cmd.PersistentFlags().StringVar(&author, "author", "", "Author recorded on the activity log")

	add := &cobra.Command{
		Use:   "add <id> <title>",
		Short: "Add a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddSubtaskUseCase().Execute(cmd.Context(), usecase.AddSubtaskInput{
				TaskID: args[0],
				Title:  args[1],
				Author: author,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added subtask %d to task %s\n", len(out.Task.Subtasks), out.Task.ID)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <id> <subtask>",
		Short: "Mark a subtask done or open",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ToggleSubtaskUseCase().Execute(cmd.Context(), usecase.SubtaskRefInput{
				TaskID:    args[0],
				SubtaskID: args[1],
				Author:    author,
			})
			if err != nil {
				return err
			}
			state := "open"
			if out.Subtask.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Subtask %q is %s (%d/%d)\n",
				out.Subtask.Title, state, out.Task.CompletedSubtasks(), len(out.Task.Subtasks))
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id> <subtask>",
		Short: "Remove a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveSubtaskUseCase().Execute(cmd.Context(), usecase.SubtaskRefInput{
				TaskID:    args[0],
				SubtaskID: args[1],
				Author:    author,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed subtask %q\n", out.Subtask.Title)
			return nil
		},
	}

	cmd.AddCommand(add, toggle, rm)
	return cmd
}

// newAttachCommand creates the attach command group.
func newAttachCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Manage a task's attachments",
		Long: `Record file attachments on a task. Only metadata (name, size and
type) is kept on the board; the file itself is not copied.`,
	}
	cmd.PersistentFlags().StringVar(&author, "author", "", "Uploader recorded on the attachment")

	var mimeType string
	add := &cobra.Command{
		Use:   "add <id> <file>",
		Short: "Attach a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[1])
			if err != nil {
				return fmt.Errorf("stat attachment: %w", err)
			}
			out, err := c.AddAttachmentUseCase().Execute(cmd.Context(), usecase.AddAttachmentInput{
				TaskID: args[0],
				Name:   args[1],
				Type:   mimeType,
				Author: author,
				Size:   info.Size(),
			})
			if err != nil {
				return err
			}
			a := out.Attachment
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Attached %s (%s, %d bytes)\n", a.Name, a.Type, a.Size)
			return nil
		},
	}
	add.Flags().StringVar(&mimeType, "type", "", "MIME type (default: guessed from the extension)")

	rm := &cobra.Command{
		Use:   "rm <id> <attachment>",
		Short: "Remove an attachment by id, name or position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveAttachmentUseCase().Execute(cmd.Context(), usecase.RemoveAttachmentInput{
				TaskID:       args[0],
				AttachmentID: args[1],
				Author:       author,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed attachment %s\n", out.Attachment.Name)
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}

// newLinkCommand creates the link command group.
func newLinkCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage links between tasks",
		Long: `Link a task to another task. Link types: blocks, blocked_by,
relates_to, duplicate. Deleting a task removes links pointing at it.`,
	}
	cmd.PersistentFlags().StringVar(&author, "author", "", "Author recorded on the activity log")

	add := &cobra.Command{
		Use:   "add <id> <type> <target>",
		Short: "Add a link",
		Example: `  board link add T3 blocks T5
  board link add T4 duplicate T1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lt, err := domain.ParseLinkType(args[1])
			if err != nil {
				return err
			}
			out, err := c.AddLinkUseCase().Execute(cmd.Context(), usecase.LinkInput{
				Type:     lt,
				TaskID:   args[0],
				TargetID: args[2],
				Author:   author,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !out.Changed {
				_, _ = fmt.Fprintln(w, "Link already exists")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Linked %s %s %s\n", args[0], lt.Display(), args[2])
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id> <target>",
		Short: "Remove every link from a task to the target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.RemoveLinkUseCase().Execute(cmd.Context(), usecase.LinkInput{
				TaskID:   args[0],
				TargetID: args[1],
				Author:   author,
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unlinked %s from %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
