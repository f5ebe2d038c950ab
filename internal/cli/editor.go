package cli

import (
	"errors"

	"github.com/runoshun/git-board/internal/app"
)

// openEditor opens the file in the container's editor.
func openEditor(c *app.Container, path string) error {
	if c.Editor == nil {
		return errors.New("no editor available")
	}
	return c.Editor.Edit(path)
}
