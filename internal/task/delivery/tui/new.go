// Package tui is the terminal front end. It renders the task list, collects
// user input, and drives the task store; it never touches the task sequence
// directly.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"personal-task-tracker/internal/task"
	"personal-task-tracker/internal/task/repository"
	"personal-task-tracker/pkg/datemath"
	pkgLog "personal-task-tracker/pkg/log"
)

// Handler runs the terminal interface until the user quits.
type Handler interface {
	Run(ctx context.Context) error
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	parser *datemath.Parser
}

// New creates the TUI delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, parser *datemath.Parser) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
	}
}

// Run loads the persisted tasks and starts the bubbletea program. A corrupt
// task document is surfaced as a warning and the list starts empty; the
// application never refuses to start over bad data.
func (h *handler) Run(ctx context.Context) error {
	startupWarning := ""
	if err := h.uc.Load(ctx); err != nil {
		switch {
		case errors.Is(err, repository.ErrCorruptData):
			h.l.Warnf(ctx, "tui: task document is corrupt, starting empty: %v", err)
			startupWarning = "Previous tasks could not be loaded (corrupt file). Starting with an empty list."
		case errors.Is(err, repository.ErrStorage):
			h.l.Warnf(ctx, "tui: task document unreadable, starting empty: %v", err)
			startupWarning = "Previous tasks could not be read. Starting with an empty list."
		default:
			return fmt.Errorf("failed to start: %w", err)
		}
	}

	m := newAppModel(ctx, h.l, h.uc, h.parser)
	m.status = startupWarning

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui terminated: %w", err)
	}
	return nil
}
