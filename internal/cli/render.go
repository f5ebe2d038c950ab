package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

var (
	markdownRenderer     *glamour.TermRenderer
	markdownRendererOnce sync.Once
)

// getMarkdownRenderer returns a cached glamour renderer, or nil if it could not be built.
func getMarkdownRenderer() *glamour.TermRenderer {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			markdownRenderer = r
		}
	})
	return markdownRenderer
}

// renderMarkdown writes the description rendered as markdown, or as plain
// indented text when plain is set or rendering fails.
func renderMarkdown(w io.Writer, text string, plain bool) {
	if !plain {
		if r := getMarkdownRenderer(); r != nil {
			if rendered, err := r.Render(text); err == nil {
				_, _ = fmt.Fprint(w, rendered)
				return
			}
		}
	}
	for _, line := range strings.Split(text, "\n") {
		_, _ = fmt.Fprintf(w, "  %s\n", line)
	}
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tTYPE\tASSIGNEE\tPOINTS\tTAGS\tTITLE")

	// Rows
	for _, task := range tasks {
		points := "-"
		if task.StoryPoints != nil {
			points = fmt.Sprintf("%d", *task.StoryPoints)
		}
		tags := "-"
		if len(task.Tags) > 0 {
			tags = "[" + strings.Join(task.Tags, ",") + "]"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			task.Priority,
			task.Type,
			task.AssigneeKey(),
			points,
			tags,
			task.Title,
		)
	}
}

// printGroups prints each group under a header with its count and point sum.
func printGroups(w io.Writer, d domain.Dimension, groups []domain.Group, epics []*domain.Epic) {
	for i, g := range groups {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "== %s (%d tasks, %d pts)\n", groupTitle(d, g.Key, epics), g.Count, g.Points)
		printTaskList(w, g.Tasks)
	}
}

// groupTitle returns the display name of a group key.
func groupTitle(d domain.Dimension, key string, epics []*domain.Epic) string {
	switch d {
	case domain.GroupStatus:
		return domain.Status(key).Display()
	case domain.GroupPriority:
		return domain.Priority(key).Display()
	case domain.GroupEpic:
		for _, e := range epics {
			if e.ID == key {
				return e.Name
			}
		}
	}
	return key
}

// printTaskDetails prints a task in the show format.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput, plain bool) {
	task := out.Task
	_, _ = fmt.Fprintf(w, "%s: %s\n\n", task.ID, task.Title)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())
	_, _ = fmt.Fprintf(w, "Type:     %s\n", task.Type.Display())
	_, _ = fmt.Fprintf(w, "Assignee: %s\n", task.AssigneeKey())
	if out.Epic != nil {
		_, _ = fmt.Fprintf(w, "Epic:     %s (%s)\n", out.Epic.Name, out.Epic.ID)
	}
	switch {
	case out.Sprint != nil:
		_, _ = fmt.Fprintf(w, "Sprint:   %s (%s)\n", out.Sprint.Name, out.Sprint.ID)
	case task.SprintID != "":
		_, _ = fmt.Fprintf(w, "Sprint:   %s\n", task.SprintID)
	}
	if task.StoryPoints != nil {
		_, _ = fmt.Fprintf(w, "Points:   %d\n", *task.StoryPoints)
	}
	if task.DueDate != nil {
		_, _ = fmt.Fprintf(w, "Due:      %s\n", task.DueDate.Format(domain.DateLayout))
	}
	if len(task.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags:     %s\n", strings.Join(task.Tags, ", "))
	}
	_, _ = fmt.Fprintf(w, "Created:  %s\n", task.Created.Format("2006-01-02 15:04"))

	if task.Description != "" {
		_, _ = fmt.Fprintln(w, "\nDescription:")
		renderMarkdown(w, task.Description, plain)
	}

	if len(task.Subtasks) > 0 {
		_, _ = fmt.Fprintf(w, "\nSubtasks (%d/%d):\n", task.CompletedSubtasks(), len(task.Subtasks))
		for i, s := range task.Subtasks {
			mark := " "
			if s.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, mark, s.Title)
		}
	}

	if len(task.Links) > 0 {
		_, _ = fmt.Fprintln(w, "\nLinks:")
		titles := make(map[string]string, len(out.Linked))
		for _, t := range out.Linked {
			titles[t.ID] = t.Title
		}
		for _, l := range task.Links {
			_, _ = fmt.Fprintf(w, "  %s %s %s\n", l.Type.Display(), l.Target, titles[l.Target])
		}
	}

	if len(task.Attachments) > 0 {
		_, _ = fmt.Fprintln(w, "\nAttachments:")
		for i, a := range task.Attachments {
			_, _ = fmt.Fprintf(w, "  %d. %s (%s, %d bytes) by %s\n", i+1, a.Name, a.Type, a.Size, a.Uploader)
		}
	}

	if len(task.Comments) > 0 {
		_, _ = fmt.Fprintln(w, "\nComments:")
		for _, c := range task.Comments {
			_, _ = fmt.Fprintf(w, "  [%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author, c.Text)
		}
	}

	if len(task.Activity) > 0 {
		_, _ = fmt.Fprintln(w, "\nActivity:")
		for _, a := range task.Activity {
			_, _ = fmt.Fprintf(w, "  [%s] %s %s\n", a.Timestamp.Format("2006-01-02 15:04"), a.Author, a.Details)
		}
	}
}
