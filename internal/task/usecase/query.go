package usecase

import (
	"context"
	"slices"
	"strings"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
)

// Filter returns the tasks matching the status filter, in insertion order.
func (uc *implUseCase) Filter(ctx context.Context, f task.Filter) []model.Task {
	if f == task.FilterAll || !f.Valid() {
		return clone(uc.tasks)
	}

	out := make([]model.Task, 0, len(uc.tasks))
	for _, t := range uc.tasks {
		if matchesFilter(t, f) {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the tasks whose title contains the query as a
// case-insensitive substring, within the input's status filter. An empty
// query matches every task.
func (uc *implUseCase) Search(ctx context.Context, input task.SearchInput) []model.Task {
	status := input.Status
	if status == "" {
		status = task.FilterAll
	}
	query := strings.ToLower(strings.TrimSpace(input.Query))

	key := string(status) + "\x00" + query
	if cached, ok := uc.searchCache.Get(key); ok {
		uc.l.Debugf(ctx, "task store: search cache hit query=%q status=%s", query, status)
		return clone(cached)
	}

	out := make([]model.Task, 0, len(uc.tasks))
	for _, t := range uc.tasks {
		if !matchesFilter(t, status) {
			continue
		}
		if query == "" || strings.Contains(strings.ToLower(t.Title), query) {
			out = append(out, t)
		}
	}

	uc.searchCache.Add(key, clone(out))
	return out
}

// SortByDeadline returns a copy of tasks sorted ascending by deadline.
// Tasks without a deadline sort after all dated tasks; the sort is stable,
// so ties keep their input order.
func (uc *implUseCase) SortByDeadline(tasks []model.Task) []model.Task {
	out := clone(tasks)
	slices.SortStableFunc(out, func(a, b model.Task) int {
		switch {
		case a.Deadline == nil && b.Deadline == nil:
			return 0
		case a.Deadline == nil:
			return 1
		case b.Deadline == nil:
			return -1
		default:
			return a.Deadline.Compare(*b.Deadline)
		}
	})
	return out
}
