package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

// newMvCommand creates the mv command, the command-line form of dropping a
// card into another column or group.
func newMvCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Group  string
		Before string
		Author string
	}

	cmd := &cobra.Command{
		Use:   "mv <id> <key>",
		Short: "Move a task to another column or group",
		Long: `Move a task into the group with the given key and place it before
another task. Without --before the task goes to the end of the board.

The group dimension defaults to status (kanban columns). With --group
epic, priority or assignee the key is an epic id, a priority or a member
id; "Unassigned" clears the epic or assignee.

Examples:
  board mv T3 in_progress
  board mv T3 done --before T1
  board mv T3 E2 --group epic
  board mv T3 Unassigned --group assignee`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim := domain.GroupStatus
			if opts.Group != "" {
				d, err := domain.ParseDimension(opts.Group)
				if err != nil {
					return err
				}
				dim = d
			}

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{
				Dimension: dim,
				Key:       args[1],
				TaskID:    args[0],
				TargetID:  opts.Before,
				Author:    opts.Author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s %s\n", out.Task.ID, dim, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Group dimension: status (default), epic, priority, assignee")
	cmd.Flags().StringVar(&opts.Before, "before", "", "Place the task before this task")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author recorded on the activity log")

	return cmd
}

// newReorderCommand creates the reorder command.
func newReorderCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <id> <before-id>",
		Short: "Place a task before another task",
		Long: `Change the manual rank of a task without touching its fields.

Example:
  board reorder T7 T2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ReorderTaskUseCase().Execute(cmd.Context(), usecase.ReorderTaskInput{
				TaskID:   args[0],
				TargetID: args[1],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Moved {
				_, _ = fmt.Fprintln(w, "Order unchanged")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Order: %s\n", strings.Join(out.Order, " "))
			return nil
		},
	}
	return cmd
}

// newAdvanceCommand creates the advance command.
func newAdvanceCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a task to the next status",
		Long: `Advance a task along the workflow:
todo -> in_progress -> review -> done -> todo. Blocked tasks go back to todo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AdvanceTaskUseCase().Execute(cmd.Context(), usecase.AdvanceTaskInput{
				TaskID: args[0],
				Author: author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s -> %s\n",
				out.Task.ID, out.Previous.Display(), out.Task.Status.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Author recorded on the activity log")

	return cmd
}
