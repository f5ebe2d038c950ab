package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgBoardLoaded:
		selected := m.SelectedTask()
		m.board = msg.Board
		if m.mode == ModeDrag {
			m.mode = ModeNormal
		}
		if selected != nil {
			m.selectTask(selected.ID)
		} else {
			m.clampCursor()
		}
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.notice = "Created " + msg.TaskID
		return m, m.loadBoard()

	case MsgTaskCloned:
		m.notice = fmt.Sprintf("Copied %s to %s", msg.SourceID, msg.TaskID)
		return m, m.loadBoard()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.notice = "Deleted " + msg.TaskID
		return m, m.loadBoard()

	case MsgTaskAdvanced:
		m.notice = fmt.Sprintf("%s -> %s", msg.TaskID, msg.Status.Display())
		return m, m.loadBoard()

	case MsgTaskMoved:
		return m, m.loadBoard()

	case MsgNotice:
		m.notice = msg.Text
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient messages on any key press
	m.err = nil
	if !m.mode.IsInputMode() {
		m.notice = ""
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeNewTask:
		return m.handleNewTaskMode(msg)
	case ModeDrag:
		return m.handleDragMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.view == ViewKanban {
			m.lane--
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.view == ViewKanban {
			m.lane++
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleView):
		selected := m.SelectedTask()
		if m.view == ViewKanban {
			m.view = ViewBacklog
		} else {
			m.view = ViewKanban
		}
		m.reselect(selected)
		return m, nil

	case key.Matches(msg, m.keys.Group):
		if m.view != ViewBacklog {
			return m, nil
		}
		selected := m.SelectedTask()
		dims := domain.AllDimensions()
		m.groupBy = dims[(slices.Index(dims, m.groupBy)+1)%len(dims)]
		m.reselect(selected)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadBoard()

	case key.Matches(msg, m.keys.New):
		m.mode = ModeNewTask
		m.titleInput.Reset()
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Insight):
		m.notice = "Summarizing..."
		return m, m.summarize()

	case key.Matches(msg, m.keys.Escape):
		if m.searchInput.Value() != "" {
			m.searchInput.Reset()
			m.clampCursor()
		}
		return m, nil
	}

	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeDetail
		m.initDetailViewport(task)
		return m, nil

	case key.Matches(msg, m.keys.Drag):
		if err := m.board.BeginDrag(task.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = ModeDrag
		m.dragTarget = ""
		m.dragMoved = false
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		return m, m.advanceTask(task.ID)

	case key.Matches(msg, m.keys.Copy):
		return m, m.cloneTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil
	}

	return m, nil
}

// reselect keeps the selection on the same task after the lanes change.
func (m *Model) reselect(selected *domain.Task) {
	if selected != nil {
		m.selectTask(selected.ID)
		return
	}
	m.clampCursor()
}

// cursorUp moves the selection up. The backlog runs through the groups
// as one list.
func (m *Model) cursorUp() {
	if m.row > 0 {
		m.row--
		return
	}
	if m.view == ViewBacklog {
		lanes := m.lanes()
		for i := m.lane - 1; i >= 0; i-- {
			if n := len(lanes[i].Tasks); n > 0 {
				m.lane, m.row = i, n-1
				return
			}
		}
	}
}

// cursorDown moves the selection down.
func (m *Model) cursorDown() {
	lanes := m.lanes()
	if m.lane >= len(lanes) {
		return
	}
	if m.row < len(lanes[m.lane].Tasks)-1 {
		m.row++
		return
	}
	if m.view == ViewBacklog {
		for i := m.lane + 1; i < len(lanes); i++ {
			if len(lanes[i].Tasks) > 0 {
				m.lane, m.row = i, 0
				return
			}
		}
	}
}

// handleDragMode moves the insertion point of the dragged card. Each move
// previews the new order on the local board; enter persists the drop.
func (m *Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lanes := m.lanes()
	if len(lanes) == 0 || !m.board.Drag().Active() {
		m.mode = ModeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.cancelDrag()

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Drag):
		return m, m.drop()

	case key.Matches(msg, m.keys.Up):
		switch {
		case m.row > 0:
			m.row--
		case m.view == ViewBacklog && m.lane > 0:
			m.lane--
			m.row = len(m.dropList(lanes[m.lane]))
		default:
			return m, nil
		}

	case key.Matches(msg, m.keys.Down):
		switch {
		case m.row < len(m.dropList(lanes[m.lane])):
			m.row++
		case m.view == ViewBacklog && m.lane < len(lanes)-1:
			m.lane++
			m.row = 0
		default:
			return m, nil
		}

	case key.Matches(msg, m.keys.Left):
		if m.view != ViewKanban || m.lane == 0 {
			return m, nil
		}
		m.lane--

	case key.Matches(msg, m.keys.Right):
		if m.view != ViewKanban || m.lane >= len(lanes)-1 {
			return m, nil
		}
		m.lane++

	default:
		return m, nil
	}

	m.clampCursor()
	if target := m.dropTarget(); target != "" {
		if m.board.DragOver(target) {
			m.dragMoved = true
		}
		m.dragTarget = target
	}
	return m, nil
}

// drop lands the dragged card on the lane under the cursor.
func (m *Model) drop() tea.Cmd {
	id := m.board.Drag().TaskID()
	lanes := m.lanes()
	dim := m.dimension()
	laneKey := lanes[m.lane].Key
	target := m.dropTarget()
	m.mode = ModeNormal

	if _, err := m.board.DropDrag(board.Drop{Dimension: dim, Key: laneKey, TargetID: target}); err != nil {
		m.err = err
		return m.loadBoard()
	}
	m.selectTask(id)
	return m.moveTask(id, dim, laneKey, target)
}

// cancelDrag abandons the drop. Reorders previewed during the drag are kept.
func (m *Model) cancelDrag() tea.Cmd {
	id := m.board.Drag().TaskID()
	m.board.CancelDrag()
	m.mode = ModeNormal
	m.selectTask(id)
	if !m.dragMoved || m.dragTarget == "" {
		return nil
	}
	return m.reorderTask(id, m.dragTarget)
}

func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.clampCursor()
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.lane, m.row = 0, 0
	m.clampCursor()
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		taskID := m.confirmTaskID
		switch m.confirmAction {
		case ConfirmDelete:
			return m, m.deleteTask(taskID)
		case ConfirmNone:
		}
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = ""
		return m, nil
	}
	return m, nil
}

func (m *Model) handleNewTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.err = errors.New("title cannot be empty")
			return m, nil
		}
		m.titleInput.Blur()
		return m, m.createTask(title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
		m.mode = ModeNormal
		m.help.ShowAll = false
	}
	return m, nil
}

func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.detailTaskID = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}
