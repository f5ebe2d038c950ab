package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

// newEpicCommand creates the epic command group.
func newEpicCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epic",
		Short: "Manage epics",
	}

	var description, color string
	add := &cobra.Command{
		Use:   "new <name>",
		Short: "Create an epic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewEpicUseCase().Execute(cmd.Context(), usecase.NewEpicInput{
				Name:        args[0],
				Description: description,
				Color:       color,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created epic %s: %s\n", out.Epic.ID, out.Epic.Name)
			return nil
		},
	}
	add.Flags().StringVar(&description, "body", "", "Epic description")
	add.Flags().StringVar(&color, "color", "", "Display color (e.g. #8b5cf6)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List epics with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListEpicsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tDONE\tPOINTS\tPROGRESS")
			for _, e := range out.Epics {
				p := e.Progress
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d/%d\t%d%%\n",
					e.Epic.ID, e.Epic.Name, p.Done, p.Total, p.DonePoints, p.Points, p.Percent())
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

// newSprintCommand creates the sprint command group.
func newSprintCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
		Long: `Manage sprints. Besides the sprints created here, tasks may be
planned into the logical sprints "current" and "next".`,
	}

	var goal, start, end string
	add := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := optionalDate(start)
			if err != nil {
				return err
			}
			to, err := optionalDate(end)
			if err != nil {
				return err
			}
			out, err := c.NewSprintUseCase().Execute(cmd.Context(), usecase.NewSprintInput{
				Start: from,
				End:   to,
				Name:  args[0],
				Goal:  goal,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created sprint %s: %s\n", out.Sprint.ID, out.Sprint.Name)
			return nil
		},
	}
	add.Flags().StringVar(&goal, "goal", "", "Sprint goal")
	add.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	add.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List sprints with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListSprintsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tDATES\tDONE\tPOINTS\tGOAL")
			for _, s := range out.Sprints {
				p := s.Progress
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d/%d\t%s\n",
					s.Sprint.ID, s.Sprint.Name, sprintDates(s.Sprint), p.Done, p.Total, p.DonePoints, p.Points, s.Sprint.Goal)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func sprintDates(s *domain.Sprint) string {
	format := func(t *time.Time) string {
		if t == nil {
			return "?"
		}
		return t.Format(domain.DateLayout)
	}
	if s.Start == nil && s.End == nil {
		return "-"
	}
	return format(s.Start) + ".." + format(s.End)
}
