package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/mentalload/internal/export"
	"github.com/haskel/mentalload/internal/session"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hotspots.SetSize(msg.Width, max(msg.Height-16, 5))
		return m, nil

	case sessionMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.applyView(msg.view)
		return m, nil

	case tasksMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.applyView(msg.view)
		m.tasks = nil
		for _, sec := range msg.sections {
			m.tasks = append(m.tasks, sec.Tasks...)
		}
		m.fieldCursor = fieldResponsibility
		m.selectTask(0)
		return m, nil

	case ratingMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.applyView(msg.view)
		m.status = fmt.Sprintf("Saved %d of %d", m.session.Rated, m.session.Total)
		m.selectTask(m.taskIdx + 1)
		return m, nil

	case resultsMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.applyView(msg.view)
		m.setReport(msg.report)
		return m, nil

	case exportMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Exported to " + msg.path
		return m, nil
	}

	return m, nil
}

func (m *Model) applyView(v *session.View) {
	if v == nil {
		return
	}
	m.session = v
	m.stage = v.Stage
	m.household = v.Household
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}

	// Requests in flight or no session yet: ignore everything else.
	if m.busy || m.session == nil {
		return m, nil
	}

	switch m.stage {
	case session.StageHome:
		return m.homeKeys(msg)
	case session.StageLearnMore:
		return m.learnMoreKeys(msg)
	case session.StageConsent:
		return m.consentKeys(msg)
	case session.StageSetup:
		return m.setupKeys(msg)
	case session.StageQuestionnaire:
		return m.questionnaireKeys(msg)
	case session.StageResults:
		return m.resultsKeys(msg)
	}
	return m, nil
}

// request marks the model busy and clears the previous outcome.
func (m Model) request(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.err = nil
	m.status = ""
	return m, cmd
}

func (m Model) homeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "c":
		return m.request(moveTo(m.client, m.sessionID(), session.StageConsent))
	case "l":
		return m.request(moveTo(m.client, m.sessionID(), session.StageLearnMore))
	}
	return m, nil
}

func (m Model) learnMoreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace":
		return m.request(moveTo(m.client, m.sessionID(), session.StageHome))
	}
	return m, nil
}

func (m Model) consentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		return m.request(giveConsent(m.client, m.sessionID()))
	case "n", "esc":
		return m.request(moveTo(m.client, m.sessionID(), session.StageHome))
	}
	return m, nil
}

func (m Model) setupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.setupCursor > 0 {
			m.setupCursor--
		}
	case "down", "j":
		if m.setupCursor < setupRows-1 {
			m.setupCursor++
		}
	case "left", "h":
		m.adjustSetup(-1)
	case "right", "l", " ":
		m.adjustSetup(1)
	case "enter":
		return m.request(saveHousehold(m.client, m.sessionID(), m.household))
	case "esc":
		return m.request(moveTo(m.client, m.sessionID(), session.StageConsent))
	}
	return m, nil
}

func (m Model) questionnaireKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < fieldCount-1 {
			m.fieldCursor++
		}
	case "left", "h":
		m.adjustField(-1)
	case "right", "l":
		m.adjustField(1)
	case "x":
		m.draft.NotApplicable = !m.draft.NotApplicable
	case "n", "tab":
		m.selectTask(m.taskIdx + 1)
	case "p", "shift+tab":
		m.selectTask(m.taskIdx - 1)
	case "enter":
		if _, ok := m.currentTask(); ok {
			return m.request(saveRating(m.client, m.sessionID(), m.draft))
		}
	case "r":
		return m.request(showResults(m.client, m.sessionID()))
	case "esc":
		return m.request(moveTo(m.client, m.sessionID(), session.StageSetup))
	}
	return m, nil
}

func (m Model) resultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		return m.request(exportCSV(m.client, m.sessionID(), export.Filename))
	case "esc":
		return m.request(reopenQuestionnaire(m.client, m.sessionID()))
	}

	var cmd tea.Cmd
	m.hotspots, cmd = m.hotspots.Update(msg)
	return m, cmd
}
