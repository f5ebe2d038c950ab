// Package cli provides the command-line interface for git-board.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupPlanning = "planning"
	groupAssist   = "assist"
)

// NewRootCommand creates the root command for git-board.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "board",
		Short: "Project board for tasks kept in your git repository",
		Long: `git-board keeps a project board (tasks, epics and sprints) inside
the git repository it tracks. Tasks move through To Do, In Progress,
Review, Done and Blocked, and can be grouped by epic, priority or
assignee.

Run without arguments to open the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupPlanning, Title: "Planning:"},
		&cobra.Group{ID: groupAssist, Title: "Assistant:"},
	)

	grouped := func(id string, cmds ...*cobra.Command) {
		for _, cmd := range cmds {
			cmd.GroupID = id
			root.AddCommand(cmd)
		}
	}

	grouped(groupSetup,
		newInitCommand(c),
		newConfigCommand(c),
		newSnapshotCmd(c),
		newLogsCommand(c),
	)
	grouped(groupTask,
		newNewCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newRmCommand(c),
		newCpCommand(c),
		newBulkCommand(c),
		newMvCommand(c),
		newReorderCommand(c),
		newAdvanceCommand(c),
		newCommentCommand(c),
		newSubtaskCommand(c),
		newAttachCommand(c),
		newLinkCommand(c),
		newTUICommand(c),
	)
	grouped(groupPlanning,
		newEpicCommand(c),
		newSprintCommand(c),
	)
	grouped(groupAssist,
		newSuggestCommand(c),
		newSummarizeCommand(c),
		newURLCommand(c),
	)

	return root
}
