// Package executor runs external programs attached to the terminal.
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/runoshun/git-board/internal/domain"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

// Client implements domain.Editor.
type Client struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// NewClient creates a client connected to the process terminal.
func NewClient() *Client {
	return &Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
}

// Ensure Client implements domain.Editor interface.
var _ domain.Editor = (*Client)(nil)

// EditorCommand returns the user's editor split into program and arguments,
// so values such as "code --wait" work. VISUAL wins over EDITOR.
func (c *Client) EditorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(c.getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{DefaultEditor}
}

// Edit opens path in the editor and waits for it to exit.
func (c *Client) Edit(path string) error {
	argv := c.EditorCommand()
	return c.ExecuteInteractive(argv[0], append(argv[1:], path)...)
}

// ExecuteInteractive runs a program with the client's stdin, stdout and stderr.
func (c *Client) ExecuteInteractive(program string, args ...string) error {
	// #nosec G204 - program comes from the user's environment
	cmd := exec.Command(program, args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", program, exitErr.ExitCode())
		}
		return fmt.Errorf("run %s: %w", program, err)
	}
	return nil
}
