package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs [id]",
		Short: "Show the board log or a task's log",
		Long: `Show .git/board/logs/board.log, or the log of one task when an id
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.ShowLogsInput{Lines: lines}
			if len(args) == 1 {
				in.TaskID = args[0]
			}
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if out.Content == "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No log entries in %s\n", out.LogPath)
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Show only the last N lines")

	return cmd
}
