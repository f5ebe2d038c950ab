// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/git-board/internal/domain"
)

// InitBoardInput contains the input parameters for InitBoard.
type InitBoardInput struct {
	BoardDir string // Path to .git/board directory
}

// InitBoardOutput contains the output from InitBoard.
type InitBoardOutput struct {
	BoardDir string // Path to the board directory
}

// InitBoard creates an empty board in the repository.
type InitBoard struct {
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewInitBoard creates a new InitBoard use case.
func NewInitBoard(storeInit domain.StoreInitializer, logger domain.Logger) *InitBoard {
	return &InitBoard{storeInit: storeInit, logger: logger}
}

// Execute creates the board directory, its logs directory and an empty store.
func (uc *InitBoard) Execute(_ context.Context, in InitBoardInput) (*InitBoardOutput, error) {
	if uc.storeInit.IsInitialized() {
		return nil, domain.ErrAlreadyInitialized
	}

	if in.BoardDir != "" {
		if err := os.MkdirAll(filepath.Join(in.BoardDir, "logs"), 0o750); err != nil {
			return nil, fmt.Errorf("create logs directory: %w", err)
		}
	}

	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize board store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("", "init", "board initialized")
	}
	return &InitBoardOutput{BoardDir: in.BoardDir}, nil
}
