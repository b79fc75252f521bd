package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/pkg/datemath"
	pkgLog "personal-task-tracker/pkg/log"
)

// mode selects which input surface owns the keyboard.
type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
)

type appModel struct {
	ctx    context.Context
	l      pkgLog.Logger
	uc     task.UseCase
	parser *datemath.Parser

	mode   mode
	filter task.Filter
	query  string
	form   taskForm

	// visible is the rendered slice: search within the active filter,
	// sorted by deadline. Rebuilt after every change, matching the
	// original application which re-sorted on each render.
	visible []model.Task
	cursor  int

	status string
	width  int
	height int
}

func newAppModel(ctx context.Context, l pkgLog.Logger, uc task.UseCase, parser *datemath.Parser) *appModel {
	m := &appModel{
		ctx:    ctx,
		l:      l,
		uc:     uc,
		parser: parser,
		filter: task.FilterAll,
	}
	m.refresh()
	return m
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible task slice from the store and clamps the
// cursor.
func (m *appModel) refresh() {
	found := m.uc.Search(m.ctx, task.SearchInput{Query: m.query, Status: m.filter})
	m.visible = m.uc.SortByDeadline(found)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor, or false when the list is
// empty.
func (m *appModel) selected() (model.Task, bool) {
	if len(m.visible) == 0 {
		return model.Task{}, false
	}
	return m.visible[m.cursor], true
}

// persist saves the store after a mutation. A failed save becomes a status
// warning; the in-memory state stays usable.
func (m *appModel) persist() {
	if err := m.uc.Save(m.ctx); err != nil {
		m.status = "Warning: " + saveFailureMessage
	}
}

// cycleFilter advances ALL -> INCOMPLETE -> COMPLETED -> ALL.
func (m *appModel) cycleFilter() {
	switch m.filter {
	case task.FilterAll:
		m.filter = task.FilterIncomplete
	case task.FilterIncomplete:
		m.filter = task.FilterCompleted
	default:
		m.filter = task.FilterAll
	}
}
