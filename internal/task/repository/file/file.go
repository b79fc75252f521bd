// Package file persists the task collection as a JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task/repository"
	pkgLog "personal-task-tracker/pkg/log"
)

type implRepository struct {
	path   string
	schema *jsonschema.Schema
	l      pkgLog.Logger
}

// New creates a file-backed task repository writing to path. The path must
// name a .json file; its directory must already exist.
func New(path string, l pkgLog.Logger) (repository.TaskRepository, error) {
	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("task document path must end in .json, got %q", path)
	}
	schema, err := compileDocumentSchema()
	if err != nil {
		return nil, err
	}
	return &implRepository{
		path:   path,
		schema: schema,
		l:      l,
	}, nil
}

// Save serializes the full task collection, overwriting any prior content.
// The document is written to a temporary file in the target directory and
// renamed into place, so readers never observe a partial write.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	records := make([]model.Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, t.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal task document: %v", repository.ErrStorage, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file in %s: %v", repository.ErrStorage, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write task document: %v", repository.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close task document: %v", repository.ErrStorage, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to set task document permissions: %v", repository.ErrStorage, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace task document: %v", repository.ErrStorage, err)
	}

	r.l.Debugf(ctx, "file repository: saved %d tasks to %s", len(tasks), r.path)
	return nil
}

// Load reads the task collection back. A missing document is the first-run
// case and yields an empty collection; an existing document must pass
// schema validation and per-record task validation as a whole, or the load
// fails with ErrCorruptData and nothing is returned.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.l.Infof(ctx, "file repository: no task document at %s, starting empty", r.path)
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read task document: %v", repository.ErrStorage, err)
	}

	if err := validateDocument(r.schema, data); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode records: %v", repository.ErrCorruptData, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for i, rec := range records {
		t, err := model.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", repository.ErrCorruptData, i, err)
		}
		tasks = append(tasks, t)
	}

	r.l.Debugf(ctx, "file repository: loaded %d tasks from %s", len(tasks), r.path)
	return tasks, nil
}
