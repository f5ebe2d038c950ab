// Package gitstore provides a Git plumbing-based implementation of BoardRepository.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/git-board/internal/domain"
)

// DefaultKeepSnapshots is the number of snapshots kept after each save.
const DefaultKeepSnapshots = 50

// Store implements domain.BoardRepository using Git plumbing (refs and blobs).
// Nothing is written to the working tree or to any branch.
//
// Data structure:
//
//	refs/<namespace>/
//	  current         → blob (board YAML)
//	  snapshots/
//	    <seq>         → blob (board YAML at save <seq>)
type Store struct {
	repo      *git.Repository
	clock     domain.Clock
	namespace string // e.g., "board"
	keep      int
	mu        sync.Mutex
}

// snapshot is the YAML envelope stored in each blob.
type snapshot struct {
	SavedAt time.Time          `yaml:"savedAt"`
	Board   *domain.BoardState `yaml:"board"`
}

// New creates a new Store for the repository at repoPath.
func New(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{
		repo:      repo,
		clock:     domain.RealClock{},
		namespace: namespace,
		keep:      DefaultKeepSnapshots,
	}
}

// SetClock replaces the clock used to stamp snapshots.
func (s *Store) SetClock(c domain.Clock) {
	s.clock = c
}

// SetKeep sets how many snapshots survive pruning. Zero or less disables pruning.
func (s *Store) SetKeep(n int) {
	s.keep = n
}

// refPrefix returns the ref prefix for this namespace.
func (s *Store) refPrefix() string {
	return "refs/" + s.namespace + "/"
}

// currentRef returns the ref name of the live board.
func (s *Store) currentRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "current")
}

// snapshotRef returns the ref name for a snapshot.
func (s *Store) snapshotRef(seq int) plumbing.ReferenceName {
	return plumbing.ReferenceName(fmt.Sprintf("%ssnapshots/%06d", s.refPrefix(), seq))
}

// Load returns the current board state.
func (s *Store) Load() (*domain.BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

// Update runs fn against the current state and saves the result as a new
// snapshot when fn succeeds.
func (s *Store) Update(fn func(*domain.BoardState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	return s.saveLocked(state)
}

// Initialize stores an empty board if none exists.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.Reference(s.currentRef(), true)
	if err == nil {
		return nil // Already initialized
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("check current ref: %w", err)
	}
	return s.saveLocked(domain.NewBoardState())
}

// IsInitialized checks if the store has a current board.
func (s *Store) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.Reference(s.currentRef(), true)
	return err == nil
}

func (s *Store) loadLocked() (*domain.BoardState, error) {
	ref, err := s.repo.Reference(s.currentRef(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("get current ref: %w", err)
	}

	snap, err := s.readSnapshot(ref.Hash())
	if err != nil {
		return nil, err
	}
	return snap.Board, nil
}

func (s *Store) saveLocked(state *domain.BoardState) error {
	data, err := yaml.Marshal(&snapshot{SavedAt: s.clock.Now(), Board: state})
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}

	hash, err := s.writeBlob(data)
	if err != nil {
		return err
	}
	return s.recordLocked(hash)
}

// recordLocked points current at hash and appends it to the snapshot history.
func (s *Store) recordLocked(hash plumbing.Hash) error {
	if err := s.repo.Storer.SetReference(plumbing.NewHashReference(s.currentRef(), hash)); err != nil {
		return fmt.Errorf("set current ref: %w", err)
	}

	refs, err := s.snapshotRefsLocked()
	if err != nil {
		return err
	}
	seq := 1
	if len(refs) > 0 {
		seq = refs[len(refs)-1].seq + 1
	}
	if err := s.repo.Storer.SetReference(plumbing.NewHashReference(s.snapshotRef(seq), hash)); err != nil {
		return fmt.Errorf("set snapshot ref: %w", err)
	}

	return s.pruneLocked(append(refs, snapshotRef{name: s.snapshotRef(seq), hash: hash, seq: seq}))
}

// pruneLocked removes the oldest snapshots beyond the keep count.
func (s *Store) pruneLocked(refs []snapshotRef) error {
	if s.keep <= 0 || len(refs) <= s.keep {
		return nil
	}
	for _, r := range refs[:len(refs)-s.keep] {
		if err := s.repo.Storer.RemoveReference(r.name); err != nil {
			return fmt.Errorf("remove snapshot %s: %w", r.name, err)
		}
	}
	return nil
}

type snapshotRef struct {
	name plumbing.ReferenceName
	hash plumbing.Hash
	seq  int
}

// snapshotRefsLocked returns the snapshot refs sorted by sequence, oldest first.
func (s *Store) snapshotRefsLocked() ([]snapshotRef, error) {
	prefix := s.refPrefix() + "snapshots/"

	iter, err := s.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}

	var out []snapshotRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		seq, parseErr := strconv.Atoi(strings.TrimPrefix(name, prefix))
		if parseErr != nil {
			return nil
		}
		out = append(out, snapshotRef{name: ref.Name(), hash: ref.Hash(), seq: seq})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b snapshotRef) int {
		return a.seq - b.seq
	})
	return out, nil
}

// ListSnapshots returns the saved snapshots, newest first.
func (s *Store) ListSnapshots() ([]domain.SnapshotInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs, err := s.snapshotRefsLocked()
	if err != nil {
		return nil, err
	}

	infos := make([]domain.SnapshotInfo, 0, len(refs))
	for i := len(refs) - 1; i >= 0; i-- {
		r := refs[i]
		snap, err := s.readSnapshot(r.hash)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", r.seq, err)
		}
		infos = append(infos, domain.SnapshotInfo{
			Ref:     r.name.String(),
			Seq:     r.seq,
			Created: snap.SavedAt,
			Tasks:   len(snap.Board.Tasks),
		})
	}
	return infos, nil
}

// RestoreSnapshot makes the snapshot the current board. ref may be the full
// ref name or the sequence number. The restore itself is recorded as a new
// snapshot so it can be undone.
func (s *Store) RestoreSnapshot(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := plumbing.ReferenceName(ref)
	if seq, err := strconv.Atoi(ref); err == nil {
		name = s.snapshotRef(seq)
	}
	if !strings.HasPrefix(name.String(), s.refPrefix()+"snapshots/") {
		return domain.ErrSnapshotNotFound
	}

	r, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.ErrSnapshotNotFound
		}
		return fmt.Errorf("get snapshot ref: %w", err)
	}

	// Refuse to point current at something that does not decode
	if _, err := s.readSnapshot(r.Hash()); err != nil {
		return err
	}
	return s.recordLocked(r.Hash())
}

func (s *Store) readSnapshot(hash plumbing.Hash) (*snapshot, error) {
	data, err := s.readBlob(hash)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	if snap.Board == nil {
		snap.Board = domain.NewBoardState()
	}
	snap.Board.Normalize()
	return &snap, nil
}

// writeBlob writes data to a blob and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// readBlob reads the content of a blob.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

// Ensure Store implements the repository interfaces.
var (
	_ domain.BoardRepository  = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
	_ domain.SnapshotStore    = (*Store)(nil)
)
