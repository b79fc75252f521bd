package task

import (
	"context"

	"personal-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain: the
// in-memory store of tasks plus CRUD, query, and persistence operations.
//
// A task reference (ref) is resolved against the store ID first; when no ID
// matches, the first task with an exactly equal title wins, in insertion
// order. Mutating operations are atomic: on error the store is unchanged.
type UseCase interface {
	// Add constructs a task from the input and appends it to the store.
	Add(ctx context.Context, input AddInput) (model.Task, error)

	// Update applies the supplied fields to the referenced task.
	Update(ctx context.Context, ref string, input UpdateInput) (model.Task, error)

	// Remove deletes the referenced task from the store.
	Remove(ctx context.Context, ref string) error

	// ToggleComplete flips the completion flag of the referenced task.
	ToggleComplete(ctx context.Context, ref string) (model.Task, error)

	// Filter returns the tasks matching the status filter, in insertion
	// order. FilterAll returns the full store contents.
	Filter(ctx context.Context, f Filter) []model.Task

	// Search returns the tasks whose title contains the query as a
	// case-insensitive substring, within the input's status filter.
	Search(ctx context.Context, input SearchInput) []model.Task

	// SortByDeadline returns a copy of tasks sorted ascending by deadline.
	// Tasks without a deadline sort after all dated tasks; the sort is
	// stable, so ties keep their input order.
	SortByDeadline(tasks []model.Task) []model.Task

	// Load replaces the in-memory store with the persisted collection. On
	// error the in-memory store is left untouched.
	Load(ctx context.Context) error

	// Save persists the full in-memory store.
	Save(ctx context.Context) error
}
