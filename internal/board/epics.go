package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/runoshun/git-board/internal/domain"
)

// Epics returns the epics in creation order.
func (b *Board) Epics() []*domain.Epic {
	return slices.Clone(b.state.Epics)
}

// Sprints returns the sprints in creation order.
func (b *Board) Sprints() []*domain.Sprint {
	return slices.Clone(b.state.Sprints)
}

// CreateEpic adds an epic with a generated id ("E1", "E2", ...).
func (b *Board) CreateEpic(name, description, color string) (*domain.Epic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	var id string
	for {
		id = fmt.Sprintf("E%d", b.state.Meta.NextEpicID)
		b.state.Meta.NextEpicID++
		if b.state.FindEpic(id) == nil {
			break
		}
	}
	epic := &domain.Epic{
		ID:          id,
		Name:        name,
		Description: description,
		Color:       color,
		Created:     b.clock.Now(),
	}
	b.state.Epics = append(b.state.Epics, epic)
	return epic, nil
}

// CreateSprint adds a sprint with a generated id ("S1", "S2", ...).
func (b *Board) CreateSprint(name, goal string, start, end *time.Time) (*domain.Sprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	var id string
	for {
		id = fmt.Sprintf("S%d", b.state.Meta.NextSprintID)
		b.state.Meta.NextSprintID++
		if b.state.FindSprint(id) == nil {
			break
		}
	}
	sprint := &domain.Sprint{
		ID:    id,
		Name:  name,
		Goal:  goal,
		Start: start,
		End:   end,
	}
	b.state.Sprints = append(b.state.Sprints, sprint)
	return sprint, nil
}

// Progress summarizes completion of a set of tasks.
type Progress struct {
	Total      int
	Done       int
	Points     int
	DonePoints int
}

// Percent returns the share of done tasks, 0-100.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Done * 100 / p.Total
}

// EpicProgress summarizes the tasks assigned to the epic.
func (b *Board) EpicProgress(epicID string) Progress {
	return progressOf(b.state.Tasks, func(t *domain.Task) bool { return t.EpicID == epicID })
}

// SprintProgress summarizes the tasks planned into the sprint.
func (b *Board) SprintProgress(sprintID string) Progress {
	return progressOf(b.state.Tasks, func(t *domain.Task) bool { return t.SprintID == sprintID })
}

func progressOf(tasks []*domain.Task, include func(*domain.Task) bool) Progress {
	var p Progress
	for _, t := range tasks {
		if !include(t) {
			continue
		}
		p.Total++
		p.Points += t.Points()
		if t.Status == domain.StatusDone {
			p.Done++
			p.DonePoints += t.Points()
		}
	}
	return p
}
