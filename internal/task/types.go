package task

// Filter selects tasks by completion status.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterCompleted  Filter = "completed"
	FilterIncomplete Filter = "incomplete"
)

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterIncomplete:
		return true
	}
	return false
}

// AddInput is the input for creating a task. Deadline is a "YYYY-MM-DD"
// date or empty for no deadline.
type AddInput struct {
	Title    string
	Deadline string
}

// UpdateInput is a partial update: nil fields are left untouched.
type UpdateInput struct {
	Title     *string
	Deadline  *string // empty string clears the deadline
	Completed *bool
}

// SearchInput selects tasks whose title contains Query as a
// case-insensitive substring, within the given status filter. An empty
// query matches every task; an empty Status means FilterAll.
type SearchInput struct {
	Query  string
	Status Filter
}
