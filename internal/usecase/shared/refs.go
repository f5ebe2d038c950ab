package shared

import (
	"fmt"

	"github.com/runoshun/git-board/internal/domain"
)

// ValidateRefs checks that the epic, sprint, assignee and link targets a
// patch names exist. self is the id of the patched task ("" on create).
func ValidateRefs(st *domain.BoardState, cfg *domain.Config, patch domain.TaskPatch, self string) error {
	if patch.EpicID != nil && *patch.EpicID != "" && st.FindEpic(*patch.EpicID) == nil {
		return fmt.Errorf("%w: %s", domain.ErrEpicNotFound, *patch.EpicID)
	}
	if patch.SprintID != nil && *patch.SprintID != "" && !st.HasSprint(*patch.SprintID) {
		return fmt.Errorf("%w: %s", domain.ErrSprintNotFound, *patch.SprintID)
	}
	if patch.Assignee != nil && cfg != nil && !cfg.HasMember(*patch.Assignee) {
		return fmt.Errorf("%w: %s", domain.ErrMemberNotFound, *patch.Assignee)
	}
	if patch.Links != nil {
		for _, l := range *patch.Links {
			if l.Target == self {
				return domain.ErrSelfLink
			}
			if !hasTask(st, l.Target) {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, l.Target)
			}
		}
	}
	return nil
}

func hasTask(st *domain.BoardState, id string) bool {
	for _, t := range st.Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
