package repository

import (
	"context"

	"personal-task-tracker/internal/model"
)

// TaskRepository is the interface for persisting the full task collection.
// Save overwrites whatever was stored before; Load returns an empty slice
// when nothing has been stored yet.
type TaskRepository interface {
	Save(ctx context.Context, tasks []model.Task) error
	Load(ctx context.Context) ([]model.Task, error)
}
