package usecase

import (
	"context"
	"fmt"
)

// Load replaces the in-memory sequence with the persisted collection. The
// repository rejects documents with any invalid record, so either the
// whole collection loads or the store keeps its current contents.
func (uc *implUseCase) Load(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task store: load failed: %v", err)
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	uc.tasks = tasks
	uc.invalidate()

	uc.l.Infof(ctx, "task store: loaded %d tasks", len(tasks))
	return nil
}

// Save persists the full in-memory sequence. The in-memory state stays
// usable even when saving fails.
func (uc *implUseCase) Save(ctx context.Context) error {
	if err := uc.repo.Save(ctx, clone(uc.tasks)); err != nil {
		uc.l.Errorf(ctx, "task store: save failed: %v", err)
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	uc.l.Debugf(ctx, "task store: saved %d tasks", len(uc.tasks))
	return nil
}
