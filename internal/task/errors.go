package task

import "errors"

// Domain-specific errors for the task package.
var (
	// ErrTaskNotFound means a reference resolved to no task in the store.
	// The store is left unchanged when it is returned.
	ErrTaskNotFound = errors.New("task not found")
)
