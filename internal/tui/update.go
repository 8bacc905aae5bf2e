package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitleaf/internal/ledger"
	"github.com/julianstephens/habitleaf/internal/models"
)

var errEmptyName = errors.New("name is required")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.state == stateList {
			return m.updateList(msg)
		}
		if m.state == stateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}
	}

	if m.state == stateAdd {
		return m.updateAddForm(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.ledger.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		habits := m.ledger.Habits()
		if m.cursor >= len(habits) {
			break
		}
		h, _ := m.ledger.Toggle(habits[m.cursor].ID)
		if err := m.save(); err != nil {
			m.errMsg = err.Error()
			break
		}
		if h.Completed {
			m.status = fmt.Sprintf("%s done, streak %d", h.Name, h.Streak)
		} else {
			m.status = fmt.Sprintf("%s unmarked", h.Name)
		}
	case key.Matches(msg, m.keys.Add):
		m.state = stateAdd
		m.form = m.newAddForm()
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		habits := m.ledger.Habits()
		if m.cursor >= len(habits) {
			break
		}
		m.deleteID = habits[m.cursor].ID
		m.state = stateConfirmDelete
	}
	return m, nil
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.ledger.Add(m.draftToLedger())
		if err := m.save(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = fmt.Sprintf("added %s", m.draft.Name)
		}
		m.state = stateList
		m.form = nil
	case huh.StateAborted:
		m.state = stateList
		m.form = nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if h, ok := m.ledger.Get(m.deleteID); ok {
			m.ledger.Delete(m.deleteID)
			if err := m.save(); err != nil {
				m.errMsg = err.Error()
			} else {
				m.status = fmt.Sprintf("deleted %s", h.Name)
			}
		}
		if m.cursor >= m.ledger.Len() && m.cursor > 0 {
			m.cursor--
		}
		m.state = stateList
		m.deleteID = ""
	case "n", "N", "esc":
		m.state = stateList
		m.deleteID = ""
	}
	return m, nil
}

func (m Model) draftToLedger() ledger.Draft {
	return ledger.Draft{
		Name:      m.draft.Name,
		Icon:      m.draft.Icon,
		Color:     m.draft.Color,
		Frequency: models.Frequency(m.draft.Frequency),
	}
}
