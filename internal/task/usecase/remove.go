package usecase

import (
	"context"
	"slices"

	"personal-task-tracker/internal/task"
)

// Remove deletes the referenced task from the store.
func (uc *implUseCase) Remove(ctx context.Context, ref string) error {
	i := uc.locate(ref)
	if i < 0 {
		return task.ErrTaskNotFound
	}

	removed := uc.tasks[i]
	uc.tasks = slices.Delete(uc.tasks, i, i+1)
	uc.invalidate()

	uc.l.Infof(ctx, "task store: removed %q id=%s", removed.Title, removed.ID)
	return nil
}
