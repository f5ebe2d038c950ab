package executor

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(env map[string]string) (*Client, *bytes.Buffer) {
	var out bytes.Buffer
	return &Client{
		stdin:  bytes.NewReader(nil),
		stdout: &out,
		stderr: &out,
		getenv: func(k string) string { return env[k] },
	}, &out
}

func TestClient_EditorCommand(t *testing.T) {
	tests := []struct {
		env  map[string]string
		name string
		want []string
	}{
		{name: "default", env: nil, want: []string{"vi"}},
		{name: "editor", env: map[string]string{"EDITOR": "nano"}, want: []string{"nano"}},
		{name: "visual wins", env: map[string]string{"EDITOR": "nano", "VISUAL": "code --wait"}, want: []string{"code", "--wait"}},
		{name: "blank visual", env: map[string]string{"EDITOR": "nano", "VISUAL": "  "}, want: []string{"nano"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(tt.env)
			assert.Equal(t, tt.want, c.EditorCommand())
		})
	}
}

func TestClient_Edit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	t.Run("passes the path as the last argument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "desc.md")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		script := filepath.Join(t.TempDir(), "fake-editor")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho edited > \"$1\"\n"), 0o700))
		c, _ := newTestClient(map[string]string{"EDITOR": script})

		require.NoError(t, c.Edit(path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "edited\n", string(content))
	})

	t.Run("reports exit status", func(t *testing.T) {
		c, _ := newTestClient(map[string]string{"EDITOR": "false"})

		err := c.Edit("ignored")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "false exited with status 1")
	})

	t.Run("reports missing program", func(t *testing.T) {
		c, _ := newTestClient(map[string]string{"EDITOR": "nonexistent-editor-xyz"})

		err := c.Edit("ignored")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "run nonexistent-editor-xyz")
	})
}

func TestClient_ExecuteInteractive_Output(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	c, out := newTestClient(nil)

	require.NoError(t, c.ExecuteInteractive("echo", "hello"))

	assert.Equal(t, "hello\n", out.String())
}
