package repository

import "errors"

// Persistence-layer errors.
var (
	// ErrCorruptData means the stored document exists but is not a valid
	// task collection. A load that hits it replaces nothing: either the
	// whole document loads or none of it does.
	ErrCorruptData = errors.New("task document is corrupt")

	// ErrStorage wraps underlying read/write failures. The in-memory
	// state stays usable when it is returned.
	ErrStorage = errors.New("task storage failure")
)
