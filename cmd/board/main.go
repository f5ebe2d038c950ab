// Package main is the entry point for the board CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/git-board/internal/app"
	"github.com/runoshun/git-board/internal/cli"
	"github.com/runoshun/git-board/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is replaced in tests.
var newRootCommand = cli.NewRootCommand

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow help and version outside a git repository
		if errors.Is(err, domain.ErrNotGitRepository) {
			return runWithoutContainer(os.Args[1:], err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	return newRootCommand(container, version).Execute()
}

// runWithoutContainer runs commands that need no repository, and returns
// gitErr for everything else.
func runWithoutContainer(args []string, gitErr error) error {
	if !canRunWithoutGit(args) {
		return gitErr
	}
	root := newRootCommand(nil, version)
	root.SetArgs(args)
	return root.Execute()
}

func canRunWithoutGit(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "completion":
		return true
	}
	for _, arg := range args {
		switch arg {
		case "--version", "--help", "-h":
			return true
		}
	}
	return false
}
