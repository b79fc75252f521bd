package tui

import (
	"time"

	"personal-task-tracker/internal/task"
	"personal-task-tracker/pkg/datemath"
)

// formField indexes the two inputs of the add/edit form.
type formField int

const (
	fieldTitle formField = iota
	fieldDeadline
)

// taskForm collects a title and a deadline expression. editID is empty when
// adding and carries the target task ID when editing.
type taskForm struct {
	editID   string
	title    string
	deadline string
	active   formField
}

func newAddForm() taskForm {
	return taskForm{}
}

func newEditForm(id, title, deadline string) taskForm {
	return taskForm{
		editID:   id,
		title:    title,
		deadline: deadline,
	}
}

func (f *taskForm) editing() bool {
	return f.editID != ""
}

func (f *taskForm) toggleField() {
	if f.active == fieldTitle {
		f.active = fieldDeadline
	} else {
		f.active = fieldTitle
	}
}

func (f *taskForm) insert(runes []rune) {
	switch f.active {
	case fieldTitle:
		f.title += string(runes)
	case fieldDeadline:
		f.deadline += string(runes)
	}
}

func (f *taskForm) backspace() {
	switch f.active {
	case fieldTitle:
		f.title = trimLastRune(f.title)
	case fieldDeadline:
		f.deadline = trimLastRune(f.deadline)
	}
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// resolveDeadline turns the form's deadline expression into the canonical
// "YYYY-MM-DD" form the store expects. An empty expression means no
// deadline.
func (f *taskForm) resolveDeadline(parser *datemath.Parser, now time.Time) (string, error) {
	if f.deadline == "" {
		return "", nil
	}
	date, err := parser.Parse(f.deadline, now)
	if err != nil {
		return "", err
	}
	return date.Format(datemath.Layout), nil
}

// addInput builds the store input for a submitted add form.
func (f *taskForm) addInput(deadline string) task.AddInput {
	return task.AddInput{Title: f.title, Deadline: deadline}
}

// updateInput builds the store input for a submitted edit form. Both fields
// are always supplied since the form was prefilled from the task.
func (f *taskForm) updateInput(deadline string) task.UpdateInput {
	title := f.title
	return task.UpdateInput{Title: &title, Deadline: &deadline}
}
