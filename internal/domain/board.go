package domain

import "time"

// Logical sprint ids accepted wherever a sprint id is expected.
const (
	SprintCurrent = "current"
	SprintNext    = "next"
)

// Epic is a thematic grouping of tasks.
type Epic struct {
	Created     time.Time `json:"created" yaml:"created"`
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Sprint is a time-boxed grouping of tasks.
// Fields are ordered to minimize memory padding.
type Sprint struct {
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Goal  string     `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// Member is someone tasks can be assigned to.
type Member struct {
	ID   string `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`
}

// BoardMeta holds id counters.
type BoardMeta struct {
	NextTaskID   int `json:"nextTaskID" yaml:"nextTaskID"`
	NextEpicID   int `json:"nextEpicID" yaml:"nextEpicID"`
	NextSprintID int `json:"nextSprintID" yaml:"nextSprintID"`
}

// BoardState is the full persisted state of a board.
// Tasks are kept in manual rank order.
type BoardState struct {
	Tasks   []*Task   `json:"tasks" yaml:"tasks"`
	Epics   []*Epic   `json:"epics" yaml:"epics"`
	Sprints []*Sprint `json:"sprints" yaml:"sprints"`
	Meta    BoardMeta `json:"meta" yaml:"meta"`
}

// NewBoardState returns an empty board with counters starting at 1.
func NewBoardState() *BoardState {
	return &BoardState{
		Tasks:   []*Task{},
		Epics:   []*Epic{},
		Sprints: []*Sprint{},
		Meta:    BoardMeta{NextTaskID: 1, NextEpicID: 1, NextSprintID: 1},
	}
}

// Normalize fills zero counters and nil slices left by older or hand-written files.
func (s *BoardState) Normalize() {
	if s.Tasks == nil {
		s.Tasks = []*Task{}
	}
	if s.Epics == nil {
		s.Epics = []*Epic{}
	}
	if s.Sprints == nil {
		s.Sprints = []*Sprint{}
	}
	if s.Meta.NextTaskID < 1 {
		s.Meta.NextTaskID = 1
	}
	if s.Meta.NextEpicID < 1 {
		s.Meta.NextEpicID = 1
	}
	if s.Meta.NextSprintID < 1 {
		s.Meta.NextSprintID = 1
	}
}

// FindEpic returns the epic with the id, or nil.
func (s *BoardState) FindEpic(id string) *Epic {
	for _, e := range s.Epics {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindSprint returns the sprint with the id, or nil.
func (s *BoardState) FindSprint(id string) *Sprint {
	for _, sp := range s.Sprints {
		if sp.ID == id {
			return sp
		}
	}
	return nil
}

// HasSprint reports whether id names a stored sprint or a logical sprint.
func (s *BoardState) HasSprint(id string) bool {
	return id == SprintCurrent || id == SprintNext || s.FindSprint(id) != nil
}
