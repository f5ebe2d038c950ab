package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/cli"
)

func TestCanRunWithoutGit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand", args: []string{"list", "-h"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "help subcommand", args: []string{"help", "new"}, want: true},
		{name: "completion", args: []string{"completion", "bash"}, want: true},
		{name: "board command", args: []string{"new", "--title", "test"}, want: false},
		{name: "tui", args: []string{"tui"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutGit(tt.args))
		})
	}
}

func TestRunWithoutContainer(t *testing.T) {
	gitErr := errors.New("not a git repository")
	var out bytes.Buffer
	orig := newRootCommand
	newRootCommand = func(c *app.Container, version string) *cobra.Command {
		cmd := cli.NewRootCommand(c, version)
		cmd.SetOut(&out)
		return cmd
	}
	t.Cleanup(func() { newRootCommand = orig })

	t.Run("version", func(t *testing.T) {
		out.Reset()

		err := runWithoutContainer([]string{"--version"}, gitErr)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "dev")
	})

	t.Run("board command", func(t *testing.T) {
		err := runWithoutContainer([]string{"list"}, gitErr)

		assert.ErrorIs(t, err, gitErr)
	})
}
