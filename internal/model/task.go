package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeadlineLayout is the calendar-date form used in the persisted document.
const DeadlineLayout = "2006-01-02"

// Task represents a single to-do item. The ID is a synthetic, session-scoped
// identifier: it makes update and delete unambiguous when titles collide,
// but it is not part of the persisted record.
type Task struct {
	ID        string
	Title     string
	Deadline  *time.Time // date-only, midnight UTC; nil means no deadline
	Completed bool
}

// Record is the serialization shape of a Task: exactly the three fields
// stored in the task document.
type Record struct {
	Title     string  `json:"title"`
	Deadline  *string `json:"deadline"`
	Completed bool    `json:"completed"`
}

// New constructs a Task from raw input. The deadline string is either empty
// (no deadline) or a "YYYY-MM-DD" date.
func New(title, deadline string) (Task, error) {
	t := Task{ID: uuid.NewString()}
	if err := t.Rename(title); err != nil {
		return Task{}, err
	}
	if err := t.Reschedule(deadline); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Rename sets the title, rejecting an empty or whitespace-only value.
func (t *Task) Rename(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	t.Title = trimmed
	return nil
}

// Reschedule sets the deadline from a "YYYY-MM-DD" string; the empty string
// clears it.
func (t *Task) Reschedule(deadline string) error {
	if deadline == "" {
		t.Deadline = nil
		return nil
	}
	parsed, err := time.ParseInLocation(DeadlineLayout, deadline, time.UTC)
	if err != nil {
		return &ValidationError{Field: "deadline", Reason: "must be a valid YYYY-MM-DD date"}
	}
	t.Deadline = &parsed
	return nil
}

// RescheduleTo sets the deadline to the given date, normalized to midnight
// UTC; a nil date clears it.
func (t *Task) RescheduleTo(date *time.Time) {
	if date == nil {
		t.Deadline = nil
		return
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t.Deadline = &d
}

// SetCompleted flips the completion flag.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
}

// DeadlineString returns the deadline as "YYYY-MM-DD", or "" when unset.
func (t Task) DeadlineString() string {
	if t.Deadline == nil {
		return ""
	}
	return t.Deadline.Format(DeadlineLayout)
}

// Record converts the task to its persisted shape.
func (t Task) Record() Record {
	r := Record{
		Title:     t.Title,
		Completed: t.Completed,
	}
	if t.Deadline != nil {
		s := t.Deadline.Format(DeadlineLayout)
		r.Deadline = &s
	}
	return r
}

// FromRecord reconstructs a Task from its persisted shape, applying the
// same validation as New. The rebuilt task gets a fresh ID.
func FromRecord(r Record) (Task, error) {
	deadline := ""
	if r.Deadline != nil {
		deadline = *r.Deadline
	}
	t, err := New(r.Title, deadline)
	if err != nil {
		return Task{}, err
	}
	t.Completed = r.Completed
	return t, nil
}

// Equal reports whether two tasks carry the same user-visible state,
// ignoring the synthetic ID.
func (t Task) Equal(other Task) bool {
	if t.Title != other.Title || t.Completed != other.Completed {
		return false
	}
	if (t.Deadline == nil) != (other.Deadline == nil) {
		return false
	}
	if t.Deadline != nil && !t.Deadline.Equal(*other.Deadline) {
		return false
	}
	return true
}
