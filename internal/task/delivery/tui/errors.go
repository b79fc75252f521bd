package tui

import (
	"errors"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/internal/task/repository"
)

const saveFailureMessage = "tasks could not be saved; changes are kept in memory"

// errorMessage returns a user-facing string for the given error.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return "Invalid input: " + ve.Error()
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, repository.ErrCorruptData):
		return "Stored tasks could not be read (corrupt file)."
	case errors.Is(err, repository.ErrStorage):
		return "Storage error: " + saveFailureMessage
	}
	return err.Error()
}
