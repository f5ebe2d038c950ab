package cli

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/runoshun/git-board/internal/domain"
)

// terminalCheck reports whether stdin is interactive. Tests override it.
var terminalCheck = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirmFunc asks the user to confirm a destructive action. Tests override it.
var confirmFunc = confirmPrompt

func confirmPrompt(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes, delete").
				Negative("No, cancel").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// confirmDestructive reports whether the action may proceed. Without --yes
// a terminal is required to ask.
func confirmDestructive(yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !terminalCheck() {
		return false, domain.ErrConfirmRequired
	}
	return confirmFunc(title, "This cannot be undone.")
}
