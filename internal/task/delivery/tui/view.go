package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	deadlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)

	formLabelStyle = lipgloss.NewStyle().
			Bold(true)
)

func (m *appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TODO LIST"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		m.viewForm(&b)
	default:
		m.viewList(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *appModel) viewList(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("Filter: %s", filterLabel(m.filter)))
	if m.query != "" || m.mode == modeSearch {
		cursor := ""
		if m.mode == modeSearch {
			cursor = "█"
		}
		b.WriteString(fmt.Sprintf("   Search: %s%s", m.query, cursor))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  No tasks to show."))
		b.WriteString("\n")
		return
	}

	for i, t := range m.visible {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}
}

func (m *appModel) renderRow(i int, t model.Task) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	deadline := t.DeadlineString()
	if deadline == "" {
		deadline = "no deadline"
	}

	line := fmt.Sprintf("%s %s", check, t.Title)
	if t.Completed {
		line = doneStyle.Render(line)
	}
	row := fmt.Sprintf("  %s  %s", line, deadlineStyle.Render(deadline))

	if i == m.cursor && m.mode == modeList {
		return selectedStyle.Render("> ") + row[2:]
	}
	return row
}

func (m *appModel) viewForm(b *strings.Builder) {
	heading := "Add Task"
	if m.form.editing() {
		heading = "Edit Task"
	}
	b.WriteString(formLabelStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(renderField("Title", m.form.title, m.form.active == fieldTitle))
	b.WriteString("\n")
	b.WriteString(renderField("Deadline", m.form.deadline, m.form.active == fieldDeadline))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("  Deadline accepts 2025-01-10, today, tomorrow, in 3 days, next friday, or empty."))
	b.WriteString("\n")
}

func renderField(label, value string, active bool) string {
	marker := "  "
	cursor := ""
	if active {
		marker = selectedStyle.Render("> ")
		cursor = "█"
	}
	return fmt.Sprintf("%s%s: %s%s", marker, formLabelStyle.Render(label), value, cursor)
}

func (m *appModel) helpLine() string {
	switch m.mode {
	case modeForm:
		return "enter save · tab switch field · esc cancel"
	case modeSearch:
		return "type to search · enter keep · esc clear"
	default:
		return "a add · e edit · d delete · space toggle · f filter · / search · q quit"
	}
}

func filterLabel(f task.Filter) string {
	switch f {
	case task.FilterCompleted:
		return "Completed"
	case task.FilterIncomplete:
		return "Pending"
	default:
		return "All"
	}
}
