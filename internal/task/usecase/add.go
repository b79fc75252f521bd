package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
)

// Add constructs a task from the input and appends it to the store.
// Duplicate titles are permitted; the synthetic ID keeps them apart.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	t, err := model.New(input.Title, input.Deadline)
	if err != nil {
		return model.Task{}, err
	}

	uc.tasks = append(uc.tasks, t)
	uc.invalidate()

	uc.l.Infof(ctx, "task store: added %q id=%s deadline=%q", t.Title, t.ID, t.DeadlineString())
	return t, nil
}
