package model

import "fmt"

// ValidationError reports an invalid task field. It never corrupts existing
// state: the operation that produced it left the task untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
