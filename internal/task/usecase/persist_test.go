package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/internal/task/repository"
	"personal-task-tracker/internal/task/usecase"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Store Contents", func(t *testing.T) {
		stored, _ := model.New("from disk", "2025-01-10")
		repo := &mockRepo{
			loadFunc: func() ([]model.Task, error) {
				return []model.Task{stored}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, 0, 0)
		mustAdd(t, uc, "in memory", "")

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := titles(uc.Filter(ctx, task.FilterAll))
		if !equalTitles(got, "from disk") {
			t.Errorf("load must replace the full sequence, got %v", got)
		}
	})

	t.Run("Corrupt Data Keeps Store Untouched", func(t *testing.T) {
		repo := &mockRepo{
			loadFunc: func() ([]model.Task, error) {
				return nil, fmt.Errorf("%w: record 0: bad title", repository.ErrCorruptData)
			},
		}
		uc := usecase.New(&mockLogger{}, repo, 0, 0)
		mustAdd(t, uc, "survivor", "")

		err := uc.Load(ctx)
		if !errors.Is(err, repository.ErrCorruptData) {
			t.Fatalf("expected ErrCorruptData, got %v", err)
		}

		got := titles(uc.Filter(ctx, task.FilterAll))
		if !equalTitles(got, "survivor") {
			t.Errorf("failed load must not touch the store, got %v", got)
		}
	})

	t.Run("Load Invalidates Search Cache", func(t *testing.T) {
		stored, _ := model.New("milk run", "")
		calls := 0
		repo := &mockRepo{
			loadFunc: func() ([]model.Task, error) {
				calls++
				if calls == 1 {
					return []model.Task{}, nil
				}
				return []model.Task{stored}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, 0, 0)

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := uc.Search(ctx, task.SearchInput{Query: "milk"}); len(got) != 0 {
			t.Fatalf("expected empty result before reload, got %v", titles(got))
		}

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := uc.Search(ctx, task.SearchInput{Query: "milk"}); len(got) != 1 {
			t.Errorf("reload must refresh search results, got %v", titles(got))
		}
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists Full Sequence", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo, 0, 0)
		mustAdd(t, uc, "a", "")
		mustAdd(t, uc, "b", "2025-01-10")

		if err := uc.Save(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.saved) != 1 {
			t.Fatalf("expected one save call, got %d", len(repo.saved))
		}
		if got := titles(repo.saved[0]); !equalTitles(got, "a", "b") {
			t.Errorf("unexpected persisted sequence %v", got)
		}
	})

	t.Run("Save Failure Propagates And State Survives", func(t *testing.T) {
		repo := &mockRepo{
			saveFunc: func(tasks []model.Task) error {
				return fmt.Errorf("%w: disk full", repository.ErrStorage)
			},
		}
		uc := usecase.New(&mockLogger{}, repo, 0, 0)
		mustAdd(t, uc, "still here", "")

		err := uc.Save(ctx)
		if !errors.Is(err, repository.ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}

		got := titles(uc.Filter(ctx, task.FilterAll))
		if !equalTitles(got, "still here") {
			t.Errorf("in-memory state must survive a failed save, got %v", got)
		}
	})
}
