package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/git-board/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeSearch, ModeConfirm, ModeNewTask, ModeDrag:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the board with header, dialogs and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if v := m.searchInput.Value(); v != "" {
		b.WriteString(m.styles.Footer.Render("Search: "+v) + "\n\n")
	}

	switch {
	case m.board == nil:
		b.WriteString(m.styles.Footer.Render("Loading board..."))
	case m.board.Len() == 0:
		b.WriteString(m.viewEmptyState())
	case m.view == ViewKanban:
		b.WriteString(m.viewKanban())
	default:
		b.WriteString(m.viewBacklog())
	}
	b.WriteString("\n")

	switch m.mode {
	case ModeNormal, ModeSearch, ModeDrag, ModeHelp, ModeDetail:
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeNewTask:
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title, the active view and the task count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Board")
	mode := m.view.String()
	if m.view == ViewBacklog && m.groupBy != domain.GroupNone {
		mode += " · by " + string(m.groupBy)
	}
	title += m.styles.Meta.Render("  " + mode)

	visible, total := 0, 0
	if m.board != nil {
		visible = len(m.board.Filter(m.filter()))
		total = m.board.Len()
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).
		Render(fmt.Sprintf("showing %d of %d tasks", visible, total))

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)
	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

func (m *Model) viewEmptyState() string {
	return m.styles.Footer.Render("No tasks yet. Press ") +
		m.styles.FooterKey.Render("n") +
		m.styles.Footer.Render(" to create one.")
}

// viewKanban renders one bordered column per status.
func (m *Model) viewKanban() string {
	lanes := m.lanes()
	if len(lanes) == 0 {
		return ""
	}
	colWidth := max((m.width-6)/len(lanes)-4, 16)

	cols := make([]string, len(lanes))
	for i, l := range lanes {
		var b strings.Builder
		title := fmt.Sprintf("%s %s (%d)", StatusIcon(domain.Status(l.Key)), l.Title, len(l.Tasks))
		b.WriteString(m.styles.StatusStyle(domain.Status(l.Key)).Inherit(m.styles.ColumnTitle).Render(title))
		b.WriteString("\n")
		b.WriteString(m.renderLaneCards(i, l, colWidth))

		style := m.styles.Column
		if i == m.lane {
			style = m.styles.ColumnActive
		}
		cols[i] = style.Width(colWidth).Render(b.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// viewBacklog renders the lanes as one list with group headers.
func (m *Model) viewBacklog() string {
	lanes := m.lanes()
	width := max(m.width-6, 40)

	var b strings.Builder
	for i, l := range lanes {
		if m.groupBy != domain.GroupNone {
			b.WriteString(m.renderGroupHeader(l, width))
			b.WriteString("\n")
		}
		b.WriteString(m.renderLaneCards(i, l, width))
	}
	return b.String()
}

// renderGroupHeader renders "── Title (n · pts) ──────".
func (m *Model) renderGroupHeader(l lane, width int) string {
	label := fmt.Sprintf(" %s (%d", l.Title, len(l.Tasks))
	if l.Points > 0 {
		label += fmt.Sprintf(" · %d pts", l.Points)
	}
	label += ") "
	lead := m.styles.GroupHeaderLine.Render("──")
	rest := max(width-lipgloss.Width(label)-2, 0)
	return lead + m.styles.GroupHeaderLabel.Render(label) + m.styles.GroupHeaderLine.Render(strings.Repeat("─", rest))
}

// renderLaneCards renders the cards of a lane. While dragging, the dragged
// card is dimmed and a marker shows where it will land.
func (m *Model) renderLaneCards(index int, l lane, width int) string {
	dragging := m.mode == ModeDrag && m.board.Drag().Active()
	dragID := m.board.Drag().TaskID()

	var b strings.Builder
	pos := 0 // index among cards other than the dragged one
	for ri, t := range l.Tasks {
		if dragging && t.ID == dragID {
			b.WriteString(m.styles.CardDragging.Render("  ⋮ "+truncate(taskLabel(t), width-4)) + "\n")
			continue
		}
		if dragging && index == m.lane && pos == m.row {
			b.WriteString(m.styles.DropMarker.Render(dropMarker(width)) + "\n")
		}
		selected := !dragging && index == m.lane && ri == m.row
		b.WriteString(m.renderCard(t, selected, width) + "\n")
		pos++
	}
	if dragging && index == m.lane && pos == m.row {
		b.WriteString(m.styles.DropMarker.Render(dropMarker(width)) + "\n")
	}
	if len(l.Tasks) == 0 {
		b.WriteString(m.styles.Meta.Render("  (empty)") + "\n")
	}
	return b.String()
}

func dropMarker(width int) string {
	return "▸ " + strings.Repeat("┄", max(width-4, 4))
}

// renderCard renders one task row: cursor, status, id, title and metadata.
func (m *Model) renderCard(t *domain.Task, selected bool, width int) string {
	cursor := "  "
	titleStyle := m.styles.Card
	if selected {
		cursor = "> "
		titleStyle = m.styles.CardSelected
	}

	var meta []string
	if !t.IsUnassigned() {
		meta = append(meta, "@"+t.Assignee)
	}
	if p := t.Points(); p > 0 {
		meta = append(meta, fmt.Sprintf("%dp", p))
	}
	if total := len(t.Subtasks); total > 0 {
		meta = append(meta, fmt.Sprintf("%d/%d", t.CompletedSubtasks(), total))
	}

	prefix := cursor +
		m.styles.StatusStyle(t.Status).Render(StatusIcon(t.Status)) + " " +
		m.styles.PriorityStyle(t.Priority).Render(fmt.Sprintf("%-2s", PriorityIcon(t.Priority))) + " " +
		m.styles.TaskID.Render(t.ID) + " "
	suffix := ""
	if len(meta) > 0 {
		suffix = " " + m.styles.Meta.Render(strings.Join(meta, " "))
	}
	for _, tag := range t.Tags {
		suffix += " " + m.styles.Tag.Render("#"+tag)
	}

	room := max(width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 8)
	return prefix + titleStyle.Render(truncate(t.Title, room)) + suffix
}

// truncate shortens s to at most n terminal cells, ending with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "…")
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	if m.confirmAction != ConfirmDelete {
		return ""
	}

	target := m.confirmTaskID
	if m.board != nil {
		if t := m.board.Get(m.confirmTaskID); t != nil {
			target = taskLabel(t)
		}
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).Render(fmt.Sprintf("Delete %s?", target))
	prompt := m.styles.DialogPrompt.Render("Links from other tasks are removed too.")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.HelpKey.Render("[ y ] Confirm"), "  ",
		m.styles.Footer.Render("[ n ] Cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewTitleInput renders the new task dialog.
func (m *Model) viewTitleInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	label := m.styles.InputPrompt.Render("Title")
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", label, m.titleInput.View(), "", hint)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the notice line and key hints for the current mode.
func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice) + "\n")
	}

	if m.mode == ModeDrag {
		hints := [][2]string{{"↑↓", "position"}, {"enter", "drop"}, {"esc", "cancel"}}
		if m.view == ViewKanban {
			hints = append([][2]string{{"←→", "column"}}, hints...)
		}
		parts := make([]string, len(hints))
		for i, h := range hints {
			parts[i] = m.styles.FooterKey.Render(h[0]) + m.styles.Footer.Render(" "+h[1])
		}
		b.WriteString(m.styles.Footer.Render("Dragging "+m.board.Drag().TaskID()+"  ") + strings.Join(parts, "  "))
		return b.String()
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("Keys")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.help.View(m.keys), "",
		m.styles.Footer.Render("Press ? or esc to close"))
}

// viewDetail renders the detail viewport of the selected task.
func (m *Model) viewDetail() string {
	hint := m.styles.Footer.Render("↑↓ scroll  esc back")
	return lipgloss.JoinVertical(lipgloss.Left, m.detailViewport.View(), "", hint)
}

// detailContent formats a task for the detail view.
func (m *Model) detailContent(t *domain.Task) string {
	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(taskLabel(t)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(m.styles.DetailLabel.Render(label) + m.styles.DetailValue.Render(value) + "\n")
	}
	row("Status", m.styles.StatusStyle(t.Status).Render(StatusIcon(t.Status)+" "+t.Status.Display()))
	row("Priority", t.Priority.Display())
	row("Type", t.Type.Display())
	row("Assignee", t.AssigneeKey())
	if t.EpicID != "" {
		row("Epic", m.groupTitle(domain.GroupEpic, t.EpicID))
	}
	if t.SprintID != "" {
		row("Sprint", t.SprintID)
	}
	if t.StoryPoints != nil {
		row("Points", fmt.Sprintf("%d", *t.StoryPoints))
	}
	if t.DueDate != nil {
		row("Due", t.DueDate.Format(domain.DateLayout))
	}
	if len(t.Tags) > 0 {
		row("Tags", strings.Join(t.Tags, ", "))
	}

	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}

	if len(t.Subtasks) > 0 {
		b.WriteString(fmt.Sprintf("\nSubtasks (%d/%d)\n", t.CompletedSubtasks(), len(t.Subtasks)))
		for _, s := range t.Subtasks {
			mark := "[ ]"
			if s.Completed {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", mark, s.Title))
		}
	}
	if len(t.Links) > 0 {
		b.WriteString("\nLinks\n")
		for _, l := range t.Links {
			b.WriteString(fmt.Sprintf("  %s %s\n", l.Type.Display(), l.Target))
		}
	}
	if len(t.Comments) > 0 {
		b.WriteString(fmt.Sprintf("\nComments (%d)\n", len(t.Comments)))
		for _, c := range t.Comments {
			b.WriteString(m.styles.Meta.Render(fmt.Sprintf("  %s %s", c.Author, c.CreatedAt.Format("2006-01-02 15:04"))) + "\n")
			b.WriteString("  " + c.Text + "\n")
		}
	}
	if len(t.Activity) > 0 {
		b.WriteString("\nActivity\n")
		for _, a := range t.Activity {
			b.WriteString(m.styles.Meta.Render(fmt.Sprintf("  %s %s: %s", a.Timestamp.Format("2006-01-02 15:04"), a.Author, a.Details)) + "\n")
		}
	}
	return b.String()
}
