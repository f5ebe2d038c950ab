package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-board/internal/domain"
)

// ListSnapshotsOutput contains the saved snapshots, newest first.
type ListSnapshotsOutput struct {
	Snapshots []domain.SnapshotInfo
}

// ListSnapshots lists board history kept by the git store.
type ListSnapshots struct {
	snapshots domain.SnapshotStore
}

// NewListSnapshots creates a new ListSnapshots use case.
// snapshots is nil when the configured store keeps no history.
func NewListSnapshots(snapshots domain.SnapshotStore) *ListSnapshots {
	return &ListSnapshots{snapshots: snapshots}
}

// Execute lists the snapshots.
func (uc *ListSnapshots) Execute(_ context.Context) (*ListSnapshotsOutput, error) {
	if uc.snapshots == nil {
		return nil, domain.ErrUnsupportedStore
	}
	snaps, err := uc.snapshots.ListSnapshots()
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return &ListSnapshotsOutput{Snapshots: snaps}, nil
}

// RestoreSnapshotInput contains the snapshot to restore.
type RestoreSnapshotInput struct {
	Ref string // Sequence number or full ref
}

// RestoreSnapshot replaces the board with a saved snapshot.
type RestoreSnapshot struct {
	snapshots domain.SnapshotStore
	logger    domain.Logger
}

// NewRestoreSnapshot creates a new RestoreSnapshot use case.
func NewRestoreSnapshot(snapshots domain.SnapshotStore, logger domain.Logger) *RestoreSnapshot {
	return &RestoreSnapshot{snapshots: snapshots, logger: logger}
}

// Execute restores the snapshot.
func (uc *RestoreSnapshot) Execute(_ context.Context, in RestoreSnapshotInput) error {
	if uc.snapshots == nil {
		return domain.ErrUnsupportedStore
	}
	if err := uc.snapshots.RestoreSnapshot(in.Ref); err != nil {
		return err
	}
	if uc.logger != nil {
		uc.logger.Info("", "snapshot", "restored "+in.Ref)
	}
	return nil
}
