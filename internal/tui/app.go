package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase"
)

// lane is one column of the kanban view or one group of the backlog.
type lane struct {
	Key    string
	Title  string
	Tasks  []*domain.Task
	Points int
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	board     *board.Board
	err       error

	// Components (structs with pointers)
	keys           KeyMap
	styles         Styles
	help           help.Model
	detailViewport viewport.Model

	// Input state (large structs)
	titleInput  textinput.Model
	searchInput textinput.Model

	// Strings
	notice        string
	confirmTaskID string
	detailTaskID  string
	dragTarget    string // last card the dragged card was placed before
	groupBy       domain.Dimension

	// Numeric state (smaller types last)
	mode          Mode
	view          ViewKind
	confirmAction ConfirmAction
	width         int
	height        int
	lane          int // selected lane
	row           int // selected card, or insertion index while dragging
	dragMoved     bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100

	view := ViewBacklog
	groupBy := domain.GroupNone
	if c != nil && c.AppConfig != nil {
		if c.AppConfig.TUI.DefaultView == ViewKanban.String() {
			view = ViewKanban
		}
		if d, err := domain.ParseDimension(c.AppConfig.TUI.GroupBy); err == nil && d != domain.GroupStatus {
			groupBy = d
		}
	}

	return &Model{
		container:   c,
		mode:        ModeNormal,
		view:        view,
		groupBy:     groupBy,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		titleInput:  ti,
		searchInput: si,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadBoard()
}

// loadBoard returns a command that reads the board from the store.
func (m *Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		b, err := m.container.Engine().View()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardLoaded{Board: b}
	}
}

// filter returns the search filter applied to every lane.
func (m *Model) filter() domain.TaskFilter {
	return domain.TaskFilter{Search: m.searchInput.Value()}
}

// dimension returns the field the current view groups by.
func (m *Model) dimension() domain.Dimension {
	if m.view == ViewKanban {
		return domain.GroupStatus
	}
	return m.groupBy
}

// lanes returns the visible lanes in display order.
func (m *Model) lanes() []lane {
	if m.board == nil {
		return nil
	}
	tasks := m.board.Filter(m.filter())

	var groups []domain.Group
	switch {
	case m.view == ViewKanban:
		groups = domain.Columns(tasks)
	case m.groupBy == domain.GroupNone:
		points := 0
		for _, t := range tasks {
			points += t.Points()
		}
		return []lane{{Title: "All tasks", Tasks: tasks, Points: points}}
	default:
		groups = domain.GroupBy(m.groupBy, tasks)
	}

	lanes := make([]lane, len(groups))
	for i, g := range groups {
		lanes[i] = lane{
			Key:    g.Key,
			Title:  m.groupTitle(m.dimension(), g.Key),
			Tasks:  g.Tasks,
			Points: g.Points,
		}
	}
	return lanes
}

// groupTitle resolves a group key to its display title.
func (m *Model) groupTitle(d domain.Dimension, key string) string {
	switch d {
	case domain.GroupStatus:
		return domain.Status(key).Display()
	case domain.GroupPriority:
		return domain.Priority(key).Display()
	case domain.GroupEpic:
		for _, e := range m.board.Epics() {
			if e.ID == key {
				return e.Name
			}
		}
	}
	return key
}

// dropList returns the lane's tasks without the dragged card. While
// dragging, row indexes into this list.
func (m *Model) dropList(l lane) []*domain.Task {
	id := m.board.Drag().TaskID()
	out := make([]*domain.Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	lanes := m.lanes()
	if m.lane < 0 || m.lane >= len(lanes) {
		return nil
	}
	tasks := lanes[m.lane].Tasks
	if m.row < 0 || m.row >= len(tasks) {
		return nil
	}
	return tasks[m.row]
}

// clampCursor keeps the cursor inside the visible lanes.
func (m *Model) clampCursor() {
	lanes := m.lanes()
	if len(lanes) == 0 {
		m.lane, m.row = 0, 0
		return
	}
	m.lane = min(max(m.lane, 0), len(lanes)-1)
	limit := len(lanes[m.lane].Tasks) - 1
	if m.mode == ModeDrag {
		limit = len(m.dropList(lanes[m.lane]))
	}
	m.row = min(max(m.row, 0), max(limit, 0))
}

// selectTask moves the cursor onto the task with the given id, if visible.
func (m *Model) selectTask(id string) {
	for li, l := range m.lanes() {
		for ri, t := range l.Tasks {
			if t.ID == id {
				m.lane, m.row = li, ri
				return
			}
		}
	}
	m.clampCursor()
}

// dropTarget returns the card the dragged card would be placed before, or
// "" when the insertion point is the end of the lane.
func (m *Model) dropTarget() string {
	lanes := m.lanes()
	if m.lane >= len(lanes) {
		return ""
	}
	list := m.dropList(lanes[m.lane])
	if m.row < len(list) {
		return list[m.row].ID
	}
	return ""
}

func (m *Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Fields: domain.TaskPatch{Title: &title},
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

func (m *Model) cloneTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CloneTaskUseCase().Execute(context.Background(), usecase.CloneTaskInput{
			TaskID: taskID,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCloned{TaskID: out.Task.ID, SourceID: taskID}
	}
}

func (m *Model) deleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			TaskID: taskID,
		}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

func (m *Model) advanceTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AdvanceTaskUseCase().Execute(context.Background(), usecase.AdvanceTaskInput{
			TaskID: taskID,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdvanced{TaskID: taskID, Status: out.Task.Status}
	}
}

// moveTask persists a drop onto a lane.
func (m *Model) moveTask(taskID string, dim domain.Dimension, key, targetID string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{
			Dimension: dim,
			Key:       key,
			TaskID:    taskID,
			TargetID:  targetID,
		}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMoved{TaskID: taskID}
	}
}

// reorderTask persists the order a cancelled drag left behind.
func (m *Model) reorderTask(taskID, targetID string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.ReorderTaskUseCase().Execute(context.Background(), usecase.ReorderTaskInput{
			TaskID:   taskID,
			TargetID: targetID,
		}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMoved{TaskID: taskID}
	}
}

func (m *Model) summarize() tea.Cmd {
	filter := m.filter()
	return func() tea.Msg {
		out, err := m.container.SummarizeBoardUseCase().Execute(context.Background(), usecase.SummarizeBoardInput{
			Filter: filter,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotice{Text: out.Summary}
	}
}

// initDetailViewport sizes the detail viewport and fills it for the task.
func (m *Model) initDetailViewport(task *domain.Task) {
	width := max(m.width-6, 20)
	height := max(m.height-6, 5)
	m.detailViewport = viewport.New(width, height)
	m.detailViewport.SetContent(m.detailContent(task))
	m.detailTaskID = task.ID
}

func taskLabel(task *domain.Task) string {
	return fmt.Sprintf("%s %s", task.ID, task.Title)
}
