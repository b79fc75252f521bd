package usecase

import (
	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
)

// locate resolves a task reference to its index in the store. IDs win over
// titles; title matches are exact and taken in insertion order. Returns -1
// when nothing matches.
func (uc *implUseCase) locate(ref string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == ref {
			return i
		}
	}
	for i := range uc.tasks {
		if uc.tasks[i].Title == ref {
			return i
		}
	}
	return -1
}

// matchesFilter reports whether t belongs to the given status filter.
func matchesFilter(t model.Task, f task.Filter) bool {
	switch f {
	case task.FilterCompleted:
		return t.Completed
	case task.FilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

// clone copies a task slice so callers never alias the store's backing
// array.
func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// invalidate drops every memoized query result. Called after any change to
// the task sequence.
func (uc *implUseCase) invalidate() {
	uc.searchCache.Purge()
}
