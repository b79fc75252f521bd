package usecase_test

import (
	"context"
	"testing"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/internal/task/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// Mock repository with overridable behavior per test case.
type mockRepo struct {
	loadFunc func() ([]model.Task, error)
	saveFunc func(tasks []model.Task) error
	saved    [][]model.Task
}

func (m *mockRepo) Load(ctx context.Context) ([]model.Task, error) {
	if m.loadFunc != nil {
		return m.loadFunc()
	}
	return []model.Task{}, nil
}

func (m *mockRepo) Save(ctx context.Context, tasks []model.Task) error {
	m.saved = append(m.saved, tasks)
	if m.saveFunc != nil {
		return m.saveFunc(tasks)
	}
	return nil
}

func newStore() task.UseCase {
	return usecase.New(&mockLogger{}, &mockRepo{}, 0, 0)
}

func mustAdd(t *testing.T, uc task.UseCase, title, deadline string) model.Task {
	t.Helper()
	added, err := uc.Add(context.Background(), task.AddInput{Title: title, Deadline: deadline})
	if err != nil {
		t.Fatalf("unexpected add error for %q: %v", title, err)
	}
	return added
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func equalTitles(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
