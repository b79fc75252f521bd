package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task/repository"
	pkgLog "personal-task-tracker/pkg/log"
)

const (
	defaultCacheSize = 128
	defaultCacheTTL  = 30 * time.Second
)

// implUseCase is the task store: the sole owner of the in-memory task
// sequence. Insertion order is the canonical order; every query hands out
// copies so callers can never mutate the store behind its back.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.TaskRepository
	tasks []model.Task

	// searchCache memoizes Search results per query+filter. The TUI
	// re-queries on every keystroke, so identical queries repeat in
	// bursts. Purged on every mutation and on Load.
	searchCache *expirable.LRU[string, []model.Task]
}

// New creates a new task store backed by the given repository. cacheSize
// and cacheTTL tune the search cache; zero values pick sane defaults.
func New(l pkgLog.Logger, repo repository.TaskRepository, cacheSize int, cacheTTL time.Duration) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		tasks:       []model.Task{},
		searchCache: expirable.NewLRU[string, []model.Task](cacheSize, nil, cacheTTL),
	}
}
