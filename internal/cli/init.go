package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a board in this repository",
		Long: `Initialize a board for the current git repository.

This command creates the .git/board/ directory with:
- board.json: empty board (json store), or refs/<namespace>/current (git store)
- logs/: directory for log files

Preconditions:
- Current directory must be inside a git repository

Error conditions:
- Already initialized: "board already initialized"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitBoardUseCase().Execute(cmd.Context(), usecase.InitBoardInput{
				BoardDir: c.Config.BoardDir,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized board in %s\n", out.BoardDir)
			return nil
		},
	}
}
