package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Fields patchFlags
		From   string
		Author string
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task at the top of the board.

The task is created with status 'todo', priority 'medium', type 'task'
and no assignee unless the flags say otherwise.

Examples:
  # Create a task
  board new --title "Fix login bug" --type bug --priority high

  # Create a task in an epic and the current sprint
  board new --title "OAuth provider" --epic E1 --sprint current --points 5

  # Create tasks from a YAML file
  board new --from tasks.yaml

  # Preview tasks from a file without creating
  board new --from tasks.yaml --dry-run

File format for --from:
  - title: Fix login bug
    type: bug
    priority: high
    tags: [auth]
  - title: Write release notes
    due: 2025-04-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return createTasksFromFile(cmd, c, opts.From, opts.Author, opts.DryRun)
			}
			if !cmd.Flags().Changed("title") {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			fields, err := opts.Fields.patch(cmd)
			if err != nil {
				return err
			}

			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				Fields: fields,
				Author: opts.Author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.Task.ID)
			return nil
		},
	}

	addPatchFlags(cmd, &opts.Fields, false)
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author recorded on the activity log (default: config or git user)")

	return cmd
}

// createTasksFromFile creates tasks from a YAML drafts file.
func createTasksFromFile(cmd *cobra.Command, c *app.Container, filePath, author string, dryRun bool) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	out, err := c.CreateTasksFromFileUseCase().Execute(cmd.Context(), usecase.CreateTasksFromFileInput{
		Content: content,
		Author:  author,
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		for i, d := range out.Drafts {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, d.Title)
		}
		return nil
	}

	for _, task := range out.Tasks {
		_, _ = fmt.Fprintf(w, "Created task %s: %s\n", task.ID, task.Title)
	}
	_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	return nil
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter filterFlags
		Group  string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in board order.

Filters are combined with AND; repeated values within one filter are
combined with OR. Use --group to partition the list by epic, priority,
assignee or status.

Examples:
  # List everything
  board list

  # High and critical bugs
  board list --type bug --priority high,critical

  # Unassigned work due this month, grouped by epic
  board list --assignee Unassigned --due-to 2025-03-31 --group epic

  # Search titles, descriptions, ids and tags
  board list -q login`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := opts.Filter.filter()
			if err != nil {
				return err
			}
			dim, err := domain.ParseDimension(opts.Group)
			if err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Filter:  filter,
				GroupBy: dim,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Groups != nil {
				printGroups(w, dim, out.Groups, out.Epics)
			} else {
				printTaskList(w, out.Tasks)
			}
			if !filter.IsEmpty() {
				_, _ = fmt.Fprintf(w, "\n%d of %d tasks\n", len(out.Tasks), out.Total)
			}
			return nil
		},
	}

	addFilterFlags(cmd, &opts.Filter)
	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Group by: none, epic, priority, assignee, status")

	return cmd
}

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON  bool
		Plain bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long: `Display a task with its subtasks, links, attachments, comments
and activity log. The description is rendered as markdown.

Examples:
  board show T3
  board show T3 --plain
  board show T3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{
				TaskID: args[0],
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Task)
			}
			printTaskDetails(cmd.OutOrStdout(), out, opts.Plain)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print the description without markdown rendering")

	return cmd
}

// newEditCommand creates the edit command for updating task fields.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Fields patchFlags
		Author string
		Editor bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Long: `Update one or more fields of a task. Only the flags given are changed;
--tag replaces the whole tag set. Each change is recorded in the activity log.

Examples:
  board edit T3 --status in_progress --assignee sam
  board edit T3 --tag backend --tag auth
  board edit T3 --clear-due
  board edit T3 --editor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := opts.Fields.patch(cmd)
			if err != nil {
				return err
			}
			if opts.Editor {
				desc, err := editDescription(cmd, c, args[0])
				if err != nil {
					return err
				}
				patch.Description = &desc
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{
				Patch:  patch,
				TaskID: args[0],
				Author: opts.Author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", out.Task.ID)
			return nil
		},
	}

	addPatchFlags(cmd, &opts.Fields, true)
	cmd.Flags().BoolVarP(&opts.Editor, "editor", "e", false, "Edit the description in $EDITOR")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author recorded on the activity log")

	return cmd
}

// editDescription opens the task description in the user's editor and
// returns the edited text.
func editDescription(cmd *cobra.Command, c *app.Container, id string) (string, error) {
	out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "board-"+id+"-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(out.Task.Description); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := openEditor(c, path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the board. Links from other tasks to it are removed.

Asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(yes, fmt.Sprintf("Delete task %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				TaskID: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// newCpCommand creates the cp command for cloning a task.
func newCpCommand(c *app.Container) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "cp <id>",
		Short: "Clone a task",
		Long: `Create a copy of a task at the bottom of the board.

The copy gets a new id, the title prefix "Copy of " and status 'todo';
subtasks, links, comments and attachments are copied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CloneTaskUseCase().Execute(cmd.Context(), usecase.CloneTaskInput{
				TaskID: args[0],
				Author: author,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Author recorded on the activity log")

	return cmd
}

// newBulkCommand creates the bulk command group.
func newBulkCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Edit or delete several tasks at once",
	}
	cmd.AddCommand(newBulkEditCommand(c), newBulkRmCommand(c))
	return cmd
}

func newBulkEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Fields patchFlags
		Author string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>...",
		Short: "Apply the same change to several tasks",
		Long: `Apply the same field changes to every listed task.
Ids that are not on the board are reported and skipped.

Example:
  board bulk edit T1 T4 T7 --status done`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := opts.Fields.patch(cmd)
			if err != nil {
				return err
			}

			out, err := c.BulkEditTasksUseCase().Execute(cmd.Context(), usecase.BulkEditTasksInput{
				Patch:   patch,
				Author:  opts.Author,
				TaskIDs: args,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Updated %d task(s)\n", len(out.Updated))
			if len(out.Missing) > 0 {
				_, _ = fmt.Fprintf(w, "Not found: %s\n", strings.Join(out.Missing, ", "))
			}
			return nil
		},
	}

	addPatchFlags(cmd, &opts.Fields, true)
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author recorded on the activity log")

	return cmd
}

func newBulkRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete several tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(yes, fmt.Sprintf("Delete %d task(s)?", len(args)))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			out, err := c.BulkDeleteTasksUseCase().Execute(cmd.Context(), usecase.BulkDeleteTasksInput{
				TaskIDs: args,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Deleted %d task(s)\n", len(out.Deleted))
			if len(out.Missing) > 0 {
				_, _ = fmt.Fprintf(w, "Not found: %s\n", strings.Join(out.Missing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
