// Package clipboard writes to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/runoshun/git-board/internal/domain"
)

// System writes to the OS clipboard through xclip, xsel, pbcopy or the
// Windows API.
type System struct{}

// New returns a System clipboard.
func New() System {
	return System{}
}

// WriteAll copies text to the clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Ensure System implements domain.Clipboard interface.
var _ domain.Clipboard = System{}
