package board

import (
	"fmt"
	"slices"
	"testing"

	"github.com/runoshun/git-board/internal/domain"
	"pgregory.net/rapid"
)

var (
	genStatus   = rapid.SampledFrom(domain.AllStatuses())
	genPriority = rapid.SampledFrom(domain.AllPriorities())
	genAssignee = rapid.SampledFrom([]string{domain.Unassigned, "sam", "alex", "kim"})
	genEpic     = rapid.SampledFrom([]string{"", "E1", "E2"})
	genTag      = rapid.SampledFrom([]string{"api", "ui", "db", "auth"})
)

func genTask(i int) *rapid.Generator[*domain.Task] {
	return rapid.Custom(func(t *rapid.T) *domain.Task {
		return &domain.Task{
			ID:       fmt.Sprintf("T%d", i+1),
			Title:    rapid.SampledFrom([]string{"Fix bug", "Add login", "Write docs", "Refactor"}).Draw(t, "title"),
			Status:   genStatus.Draw(t, "status"),
			Priority: genPriority.Draw(t, "priority"),
			Type:     domain.TypeTask,
			Assignee: genAssignee.Draw(t, "assignee"),
			EpicID:   genEpic.Draw(t, "epic"),
			Tags:     rapid.SliceOfNDistinct(genTag, 0, 2, rapid.ID[string]).Draw(t, "tags"),
		}
	})
}

func drawBoard(t *rapid.T) *Board {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	tasks := make([]*domain.Task, n)
	for i := range tasks {
		tasks[i] = genTask(i).Draw(t, fmt.Sprintf("task%d", i))
	}
	return newTestBoard(tasks...)
}

func drawFilter(t *rapid.T) domain.TaskFilter {
	return domain.TaskFilter{
		Search:     rapid.SampledFrom([]string{"", "fix", "LOGIN", "t1", "api"}).Draw(t, "search"),
		Statuses:   rapid.SliceOfNDistinct(genStatus, 0, 2, rapid.ID[domain.Status]).Draw(t, "statuses"),
		Priorities: rapid.SliceOfNDistinct(genPriority, 0, 2, rapid.ID[domain.Priority]).Draw(t, "priorities"),
		Assignees:  rapid.SliceOfNDistinct(genAssignee, 0, 2, rapid.ID[string]).Draw(t, "assignees"),
		Tags:       rapid.SliceOfNDistinct(genTag, 0, 2, rapid.ID[string]).Draw(t, "tags"),
	}
}

func TestProperty_FilterIsPureAndIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		f := drawFilter(t)
		before := ids(b.Tasks())

		once := b.Filter(f)
		twice := f.Apply(once)

		if !slices.Equal(ids(once), ids(twice)) {
			t.Fatalf("filter not idempotent: %v then %v", ids(once), ids(twice))
		}
		if !slices.Equal(before, ids(b.Tasks())) {
			t.Fatalf("filter mutated the board: %v -> %v", before, ids(b.Tasks()))
		}
		for _, task := range once {
			if !f.Matches(task) {
				t.Fatalf("task %s returned but does not match", task.ID)
			}
		}
	})
}

func TestProperty_FilterPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		order := ids(b.Tasks())

		last := -1
		for _, task := range b.Filter(drawFilter(t)) {
			pos := slices.Index(order, task.ID)
			if pos <= last {
				t.Fatalf("filter output out of board order at %s", task.ID)
			}
			last = pos
		}
	})
}

func TestProperty_GroupByPartitions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		d := rapid.SampledFrom(append(domain.AllDimensions(), domain.GroupStatus)).Draw(t, "dimension")

		groups := b.Group(d, domain.TaskFilter{})

		seen := make(map[string]int)
		keys := make(map[string]bool)
		total := 0
		for _, g := range groups {
			if keys[g.Key] {
				t.Fatalf("duplicate group key %q", g.Key)
			}
			keys[g.Key] = true
			if g.Count != len(g.Tasks) {
				t.Fatalf("group %q count %d != %d tasks", g.Key, g.Count, len(g.Tasks))
			}
			for _, task := range g.Tasks {
				if d.Key(task) != g.Key {
					t.Fatalf("task %s in group %q has key %q", task.ID, g.Key, d.Key(task))
				}
				seen[task.ID]++
			}
			total += g.Count
		}
		if total != b.Len() {
			t.Fatalf("groups hold %d tasks, board has %d", total, b.Len())
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("task %s appears in %d groups", id, n)
			}
		}
	})
}

func TestProperty_IDsStayUnique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		steps := rapid.IntRange(1, 20).Draw(t, "steps")

		for i := range steps {
			live := ids(b.Tasks())
			switch rapid.IntRange(0, 2).Draw(t, fmt.Sprintf("op%d", i)) {
			case 0:
				if _, err := b.Create(domain.TaskPatch{Title: ptr("new")}); err != nil {
					t.Fatal(err)
				}
			case 1:
				if len(live) == 0 {
					continue
				}
				if _, err := b.Clone(rapid.SampledFrom(live).Draw(t, "clone")); err != nil {
					t.Fatal(err)
				}
			case 2:
				if len(live) == 0 {
					continue
				}
				if _, err := b.Delete(rapid.SampledFrom(live).Draw(t, "delete")); err != nil {
					t.Fatal(err)
				}
			}

			got := ids(b.Tasks())
			uniq := slices.Compact(slices.Sorted(slices.Values(got)))
			if len(uniq) != len(got) {
				t.Fatalf("duplicate ids after step %d: %v", i, got)
			}
		}
	})
}

func TestProperty_DeleteShrinksByOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		if b.Len() == 0 {
			t.Skip("empty board")
		}
		id := rapid.SampledFrom(ids(b.Tasks())).Draw(t, "id")
		n := b.Len()

		if _, err := b.Delete(id); err != nil {
			t.Fatal(err)
		}

		if b.Len() != n-1 {
			t.Fatalf("len %d after delete, want %d", b.Len(), n-1)
		}
		if b.Get(id) != nil {
			t.Fatalf("task %s still present", id)
		}
	})
}

func TestProperty_ReorderIsPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		if b.Len() < 2 {
			t.Skip("need two tasks")
		}
		before := ids(b.Tasks())
		dragged := rapid.SampledFrom(before).Draw(t, "dragged")
		target := rapid.SampledFrom(before).Draw(t, "target")

		b.Reorder(dragged, target)

		after := ids(b.Tasks())
		if !slices.Equal(slices.Sorted(slices.Values(before)), slices.Sorted(slices.Values(after))) {
			t.Fatalf("reorder lost or duplicated tasks: %v -> %v", before, after)
		}
		if dragged != target && slices.Index(after, dragged)+1 != slices.Index(after, target) {
			t.Fatalf("dragged %s not placed before target %s: %v", dragged, target, after)
		}
	})
}
