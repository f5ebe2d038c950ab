package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/usecase"
)

// newSuggestCommand creates the suggest command.
func newSuggestCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Author string
		Create bool
	}

	cmd := &cobra.Command{
		Use:   "suggest <request>",
		Short: "Ask the assistant to draft tasks",
		Long: `Ask the configured OpenAI-compatible model to propose tasks for a
request. The current board is sent as context. With --create every
suggestion is added to the top of the board.

The assistant reads its API key from the environment variable named by
[ai] api_key_env (default OPENAI_API_KEY).

Examples:
  board suggest "password reset flow"
  board suggest "hardening before launch" --create`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.SuggestTasksUseCase().Execute(cmd.Context(), usecase.SuggestTasksInput{
				Prompt: strings.Join(args, " "),
				Author: opts.Author,
				Create: opts.Create,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Notice != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Notice)
				return nil
			}
			if out.Created != nil {
				for _, t := range out.Created {
					_, _ = fmt.Fprintf(w, "Created task %s: %s\n", t.ID, t.Title)
				}
				return nil
			}
			for i, d := range out.Drafts {
				meta := []string{}
				if d.Type != "" {
					meta = append(meta, d.Type)
				}
				if d.Priority != "" {
					meta = append(meta, d.Priority)
				}
				if d.Points != nil {
					meta = append(meta, fmt.Sprintf("%d pts", *d.Points))
				}
				_, _ = fmt.Fprintf(w, "%d. %s", i+1, d.Title)
				if len(meta) > 0 {
					_, _ = fmt.Fprintf(w, " [%s]", strings.Join(meta, ", "))
				}
				_, _ = fmt.Fprintln(w)
				if d.Description != "" {
					_, _ = fmt.Fprintf(w, "   %s\n", d.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Create, "create", false, "Add the suggestions to the board")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author recorded on created tasks")

	return cmd
}

// newSummarizeCommand creates the summarize command.
func newSummarizeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter filterFlags
	}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Ask the assistant for a short insight about the board",
		Long: `Summarize the board, or the tasks matching the filters, with the
configured model. Prints a fixed fallback message when the model fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := opts.Filter.filter()
			if err != nil {
				return err
			}
			out, err := c.SummarizeBoardUseCase().Execute(cmd.Context(), usecase.SummarizeBoardInput{
				Filter: filter,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
			return nil
		},
	}

	addFilterFlags(cmd, &opts.Filter)

	return cmd
}

// newURLCommand creates the url command.
func newURLCommand(c *app.Container) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "url <id>",
		Short: "Print the shareable URL of a task",
		Long: `Print <origin>/task/<id>, where origin comes from [board] origin.
With --copy the URL is also written to the system clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.TaskURLUseCase().Execute(cmd.Context(), usecase.TaskURLInput{
				TaskID: args[0],
				Copy:   copyURL,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			if out.Copied {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "Copy the URL to the clipboard")

	return cmd
}
