package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "f":
		m.cycleFilter()
		m.cursor = 0
		m.refresh()
	case "/":
		m.mode = modeSearch
	case "esc":
		m.query = ""
		m.refresh()
	case "a":
		m.form = newAddForm()
		m.mode = modeForm
	case "e":
		if t, ok := m.selected(); ok {
			m.form = newEditForm(t.ID, t.Title, t.DeadlineString())
			m.mode = modeForm
		}
	case "d":
		if t, ok := m.selected(); ok {
			if err := m.uc.Remove(m.ctx, t.ID); err != nil {
				m.status = errorMessage(err)
				break
			}
			m.refresh()
			m.persist()
		}
	case " ", "enter":
		if t, ok := m.selected(); ok {
			if _, err := m.uc.ToggleComplete(m.ctx, t.ID); err != nil {
				m.status = errorMessage(err)
				break
			}
			m.refresh()
			m.persist()
		}
	}
	return m, nil
}

// updateSearch feeds every keystroke back into the store so results narrow
// as the user types, like the original search bar.
func (m *appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.query = ""
		m.mode = modeList
		m.refresh()
	case "enter":
		m.mode = modeList
	case "backspace":
		m.query = trimLastRune(m.query)
		m.refresh()
	default:
		if msg.Type == tea.KeyRunes {
			m.query += string(msg.Runes)
			m.refresh()
		} else if msg.Type == tea.KeySpace {
			m.query += " "
			m.refresh()
		}
	}
	return m, nil
}

func (m *appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
	case "tab", "shift+tab":
		m.form.toggleField()
	case "enter":
		m.submitForm()
	case "backspace":
		m.form.backspace()
	default:
		if msg.Type == tea.KeyRunes {
			m.form.insert(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.form.insert([]rune{' '})
		}
	}
	return m, nil
}

// submitForm validates and applies the form through the store. Validation
// failures keep the form open with a message so the user can correct the
// input.
func (m *appModel) submitForm() {
	deadline, err := m.form.resolveDeadline(m.parser, time.Now())
	if err != nil {
		m.status = "Invalid deadline: " + err.Error()
		return
	}

	if m.form.editing() {
		_, err = m.uc.Update(m.ctx, m.form.editID, m.form.updateInput(deadline))
	} else {
		_, err = m.uc.Add(m.ctx, m.form.addInput(deadline))
	}
	if err != nil {
		m.status = errorMessage(err)
		return
	}

	m.mode = modeList
	m.status = ""
	m.refresh()
	m.persist()
}
