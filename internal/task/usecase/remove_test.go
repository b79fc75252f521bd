package usecase_test

import (
	"context"
	"errors"
	"testing"

	"personal-task-tracker/internal/task"
)

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Remove By ID", func(t *testing.T) {
		uc := newStore()
		keep := mustAdd(t, uc, "keep", "")
		gone := mustAdd(t, uc, "gone", "")

		if err := uc.Remove(ctx, gone.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := uc.Filter(ctx, task.FilterAll)
		if len(got) != 1 || got[0].ID != keep.ID {
			t.Errorf("unexpected store contents %v", titles(got))
		}
	})

	t.Run("Remove By Title Takes First Match", func(t *testing.T) {
		uc := newStore()
		first := mustAdd(t, uc, "dup", "2025-01-10")
		second := mustAdd(t, uc, "dup", "2025-02-01")

		if err := uc.Remove(ctx, "dup"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := uc.Filter(ctx, task.FilterAll)
		if len(got) != 1 || got[0].ID != second.ID {
			t.Errorf("expected first duplicate removed, store holds %+v", got)
		}
		_ = first
	})

	t.Run("Not Found Leaves Store Unchanged", func(t *testing.T) {
		uc := newStore()
		mustAdd(t, uc, "a", "")
		mustAdd(t, uc, "b", "")
		before := titles(uc.Filter(ctx, task.FilterAll))

		err := uc.Remove(ctx, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}

		after := titles(uc.Filter(ctx, task.FilterAll))
		if !equalTitles(after, before...) {
			t.Errorf("store changed on failed remove: %v -> %v", before, after)
		}
	})
}
