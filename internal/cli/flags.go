package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/domain"
)

// patchFlags holds the task field flags shared by new, edit and bulk edit.
type patchFlags struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Type        string
	Assignee    string
	Epic        string
	Sprint      string
	Due         string
	Tags        []string
	Points      int
	ClearPoints bool
	ClearDue    bool
}

// addPatchFlags registers the task field flags. withStatus adds --status,
// which new does not accept.
func addPatchFlags(cmd *cobra.Command, f *patchFlags, withStatus bool) {
	cmd.Flags().StringVar(&f.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&f.Description, "body", "", "Task description (markdown)")
	if withStatus {
		cmd.Flags().StringVar(&f.Status, "status", "", "Status: todo, in_progress, review, done, blocked")
		cmd.Flags().BoolVar(&f.ClearPoints, "clear-points", false, "Remove the story point estimate")
		cmd.Flags().BoolVar(&f.ClearDue, "clear-due", false, "Remove the due date")
	}
	cmd.Flags().StringVar(&f.Priority, "priority", "", "Priority: low, medium, high, critical")
	cmd.Flags().StringVar(&f.Type, "type", "", "Type: task, bug, story, spike, tech_debt")
	cmd.Flags().StringVar(&f.Assignee, "assignee", "", "Member id (\"Unassigned\" clears)")
	cmd.Flags().StringVar(&f.Epic, "epic", "", "Epic id (\"\" clears)")
	cmd.Flags().StringVar(&f.Sprint, "sprint", "", "Sprint id, current or next (\"\" clears)")
	cmd.Flags().IntVar(&f.Points, "points", 0, "Story points")
	cmd.Flags().StringVar(&f.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&f.Tags, "tag", nil, "Tags (replaces the tag set; can specify multiple)")
}

// patch builds a TaskPatch from the flags that were set on the command line.
func (f *patchFlags) patch(cmd *cobra.Command) (domain.TaskPatch, error) {
	var p domain.TaskPatch
	changed := cmd.Flags().Changed

	if changed("title") {
		p.Title = &f.Title
	}
	if changed("body") {
		p.Description = &f.Description
	}
	if changed("status") {
		s, err := domain.ParseStatus(f.Status)
		if err != nil {
			return p, err
		}
		p.Status = &s
	}
	if changed("priority") {
		pr, err := domain.ParsePriority(f.Priority)
		if err != nil {
			return p, err
		}
		p.Priority = &pr
	}
	if changed("type") {
		t, err := domain.ParseTaskType(f.Type)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	if changed("assignee") {
		p.Assignee = &f.Assignee
	}
	if changed("epic") {
		p.EpicID = &f.Epic
	}
	if changed("sprint") {
		p.SprintID = &f.Sprint
	}
	if changed("points") {
		p.StoryPoints = &f.Points
	}
	if changed("due") {
		d, err := domain.ParseDate(f.Due)
		if err != nil {
			return p, err
		}
		p.DueDate = &d
	}
	if changed("tag") {
		tags := splitList(f.Tags)
		p.Tags = &tags
	}
	p.ClearStoryPoints = f.ClearPoints
	p.ClearDueDate = f.ClearDue
	return p, nil
}

// filterFlags holds the list filter flags.
type filterFlags struct {
	Search     string
	Sprint     string
	DueFrom    string
	DueTo      string
	Statuses   []string
	Priorities []string
	Types      []string
	Assignees  []string
	Tags       []string
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVarP(&f.Search, "search", "q", "", "Match title, description, id or tag (case-insensitive)")
	cmd.Flags().StringArrayVar(&f.Statuses, "status", nil, "Filter by status (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.Priorities, "priority", nil, "Filter by priority (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.Types, "type", nil, "Filter by type (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.Assignees, "assignee", nil, "Filter by assignee; Unassigned matches none (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.Tags, "tag", nil, "Filter by tag; any listed tag matches (can specify multiple)")
	cmd.Flags().StringVar(&f.Sprint, "sprint", "", "Filter by sprint id, current or next")
	cmd.Flags().StringVar(&f.DueFrom, "due-from", "", "Due on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.DueTo, "due-to", "", "Due on or before (YYYY-MM-DD)")
}

func (f *filterFlags) filter() (domain.TaskFilter, error) {
	filter := domain.TaskFilter{
		Search:    f.Search,
		SprintID:  f.Sprint,
		Assignees: splitList(f.Assignees),
		Tags:      splitList(f.Tags),
	}
	for _, s := range splitList(f.Statuses) {
		v, err := domain.ParseStatus(s)
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, v)
	}
	for _, s := range splitList(f.Priorities) {
		v, err := domain.ParsePriority(s)
		if err != nil {
			return filter, err
		}
		filter.Priorities = append(filter.Priorities, v)
	}
	for _, s := range splitList(f.Types) {
		v, err := domain.ParseTaskType(s)
		if err != nil {
			return filter, err
		}
		filter.Types = append(filter.Types, v)
	}
	var err error
	if filter.DueFrom, err = optionalDate(f.DueFrom); err != nil {
		return filter, err
	}
	if filter.DueTo, err = optionalDate(f.DueTo); err != nil {
		return filter, err
	}
	return filter, nil
}

// splitList accepts both repeated flags and comma-separated values.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	return &d, nil
}
