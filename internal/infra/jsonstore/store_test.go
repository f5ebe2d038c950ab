package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/git-board/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "board", "board.json"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	store := New(path)
	if store.IsInitialized() {
		t.Fatal("IsInitialized() = true before Initialize")
	}

	// Initialize should create the file
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
	if !store.IsInitialized() {
		t.Error("IsInitialized() = false after Initialize")
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Tasks) != 0 {
		t.Errorf("len(Tasks) = %d, want 0", len(state.Tasks))
	}
	if state.Meta.NextTaskID != 1 {
		t.Errorf("NextTaskID = %d, want 1", state.Meta.NextTaskID)
	}
}

func TestStore_NotInitialized(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := store.Load(); !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
	err := store.Update(func(*domain.BoardState) error { return nil })
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("Update() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_UpdateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Truncate(time.Second).UTC()
	points := 5

	err := store.Update(func(st *domain.BoardState) error {
		st.Tasks = append(st.Tasks,
			&domain.Task{
				ID:          "T2",
				Title:       "Second",
				Status:      domain.StatusReview,
				StoryPoints: &points,
				Created:     now,
				Subtasks:    []domain.Subtask{{ID: "s1", Title: "write", Completed: true}},
				Activity:    []domain.ActivityEntry{{ID: "a1", Event: domain.EventCreated, Timestamp: now}},
			},
			&domain.Task{ID: "T1", Title: "First", Status: domain.StatusTodo, Created: now},
		)
		st.Epics = append(st.Epics, &domain.Epic{ID: "E1", Name: "Auth", Created: now})
		st.Meta.NextTaskID = 3
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", len(state.Tasks))
	}
	// Rank order is the slice order, not id order
	if state.Tasks[0].ID != "T2" || state.Tasks[1].ID != "T1" {
		t.Errorf("order = [%s %s], want [T2 T1]", state.Tasks[0].ID, state.Tasks[1].ID)
	}
	got := state.Tasks[0]
	if got.Points() != 5 {
		t.Errorf("Points() = %d, want 5", got.Points())
	}
	if !got.Created.Equal(now) {
		t.Errorf("Created = %v, want %v", got.Created, now)
	}
	if len(got.Subtasks) != 1 || !got.Subtasks[0].Completed {
		t.Errorf("Subtasks = %+v", got.Subtasks)
	}
	if len(got.Activity) != 1 || got.Activity[0].Event != domain.EventCreated {
		t.Errorf("Activity = %+v", got.Activity)
	}
	if state.FindEpic("E1") == nil {
		t.Error("epic E1 not persisted")
	}
	if state.Meta.NextTaskID != 3 {
		t.Errorf("NextTaskID = %d, want 3", state.Meta.NextTaskID)
	}
}

func TestStore_UpdateErrorDiscardsChanges(t *testing.T) {
	store := newTestStore(t)
	boom := errors.New("boom")

	err := store.Update(func(st *domain.BoardState) error {
		st.Tasks = append(st.Tasks, &domain.Task{ID: "T1", Title: "lost"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want boom", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Tasks) != 0 {
		t.Errorf("len(Tasks) = %d, want 0", len(state.Tasks))
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(func(st *domain.BoardState) error {
				st.Meta.NextTaskID++
				return nil
			})
		}()
	}
	wg.Wait()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Meta.NextTaskID != 11 {
		t.Errorf("NextTaskID = %d, want 11", state.Meta.NextTaskID)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}
