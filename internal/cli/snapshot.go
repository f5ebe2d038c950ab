package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/usecase"
)

func newSnapshotCmd(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "List and restore board snapshots",
		Long: `The git store records every saved board state under
refs/<namespace>/snapshots/. These commands list and restore them.
They are not available with the json store.`,
	}

	cmd.AddCommand(newSnapshotListCmd(c))
	cmd.AddCommand(newSnapshotRestoreCmd(c))

	return cmd
}

func newSnapshotListCmd(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListSnapshotsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Snapshots) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()
			_, _ = fmt.Fprintln(tw, "SEQ\tSAVED\tTASKS\tREF")
			for _, s := range out.Snapshots {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", s.Seq, s.Created.Format("2006-01-02 15:04:05"), s.Tasks, s.Ref)
			}
			return nil
		},
	}
}

func newSnapshotRestoreCmd(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <seq|ref>",
		Short: "Replace the board with a snapshot",
		Long: `Restore the board from a snapshot. The restore is recorded as a
new snapshot and the previous state stays listed, so a restore can be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(yes, fmt.Sprintf("Restore snapshot %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := c.RestoreSnapshotUseCase().Execute(cmd.Context(), usecase.RestoreSnapshotInput{
				Ref: args[0],
			}); err != nil {
				return fmt.Errorf("restore snapshot: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored from %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
