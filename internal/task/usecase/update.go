package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
)

// Update applies the supplied fields to the referenced task, re-validating
// each one. Validation runs against a copy, so a failed update leaves the
// store exactly as it was.
func (uc *implUseCase) Update(ctx context.Context, ref string, input task.UpdateInput) (model.Task, error) {
	i := uc.locate(ref)
	if i < 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated := uc.tasks[i]
	if input.Title != nil {
		if err := updated.Rename(*input.Title); err != nil {
			return model.Task{}, err
		}
	}
	if input.Deadline != nil {
		if err := updated.Reschedule(*input.Deadline); err != nil {
			return model.Task{}, err
		}
	}
	if input.Completed != nil {
		updated.SetCompleted(*input.Completed)
	}

	uc.tasks[i] = updated
	uc.invalidate()

	uc.l.Infof(ctx, "task store: updated %q id=%s", updated.Title, updated.ID)
	return updated, nil
}

// ToggleComplete flips the completion flag of the referenced task.
func (uc *implUseCase) ToggleComplete(ctx context.Context, ref string) (model.Task, error) {
	i := uc.locate(ref)
	if i < 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.tasks[i].SetCompleted(!uc.tasks[i].Completed)
	uc.invalidate()

	t := uc.tasks[i]
	uc.l.Infof(ctx, "task store: toggled %q id=%s completed=%t", t.Title, t.ID, t.Completed)
	return t, nil
}
