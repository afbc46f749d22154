package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/session"
)

// Config holds TUI configuration
type Config struct {
	ServerURL string
	User      string
	Password  string
}

// Household setup rows.
const (
	setupChildren = iota
	setupEmployedA
	setupEmployedB
	setupPets
	setupVehicle
	setupRows
)

// Rating fields on the questionnaire screen.
const (
	fieldResponsibility = iota
	fieldBurden
	fieldFairness
	fieldCount
)

const (
	responsibilityStep = 10
	maxChildren        = 10
)

// Model is the main TUI model
type Model struct {
	config Config
	client *apiClient

	session *session.View
	stage   session.Stage

	household   catalog.Household
	setupCursor int

	tasks       []catalog.Task
	taskIdx     int
	draft       rating.Input
	fieldCursor int

	report   *results.Report
	hotspots list.Model

	width  int
	height int
	busy   bool
	err    error
	status string
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	hotspots := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	hotspots.Title = "Conversation starters"
	hotspots.SetShowStatusBar(false)
	hotspots.SetFilteringEnabled(false)
	hotspots.SetShowHelp(false)

	return Model{
		config:    cfg,
		client:    newAPIClient(cfg),
		stage:     session.StageHome,
		household: catalog.DefaultHousehold(),
		hotspots:  hotspots,
		busy:      true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return createSession(m.client)
}

// hotspotItem adapts a hotspot for the list component.
type hotspotItem struct {
	h results.Hotspot
}

func (i hotspotItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.h.Task, i.h.Pillar.Label())
}

func (i hotspotItem) Description() string {
	return i.h.Question
}

func (i hotspotItem) FilterValue() string {
	return i.h.Task
}

func (m Model) sessionID() string {
	if m.session == nil {
		return ""
	}
	return m.session.ID
}

// currentTask returns the task under the cursor.
func (m Model) currentTask() (catalog.Task, bool) {
	if m.taskIdx < 0 || m.taskIdx >= len(m.tasks) {
		return catalog.Task{}, false
	}
	return m.tasks[m.taskIdx], true
}

// draftFor returns the saved answer for a task, or the neutral default.
func (m Model) draftFor(t catalog.Task) rating.Input {
	if m.session != nil {
		for _, in := range m.session.Ratings {
			if in.TaskID == t.ID {
				return in
			}
		}
	}
	return rating.Input{
		TaskID:         t.ID,
		Responsibility: rating.SharedResponsibility,
		Burden:         3,
		Fairness:       3,
	}
}

// selectTask moves the cursor and loads the task's answer into the draft.
func (m *Model) selectTask(idx int) {
	if len(m.tasks) == 0 {
		return
	}
	idx = min(max(idx, 0), len(m.tasks)-1)
	m.taskIdx = idx
	m.draft = m.draftFor(m.tasks[idx])
}

// adjustField moves the focused rating field by delta steps within its
// scale.
func (m *Model) adjustField(delta int) {
	switch m.fieldCursor {
	case fieldResponsibility:
		m.draft.Responsibility = clamp(m.draft.Responsibility+delta*responsibilityStep,
			rating.MinResponsibility, rating.MaxResponsibility)
	case fieldBurden:
		m.draft.Burden = clamp(m.draft.Burden+delta, rating.MinBurden, rating.MaxBurden)
	case fieldFairness:
		m.draft.Fairness = clamp(m.draft.Fairness+delta, rating.MinFairness, rating.MaxFairness)
	}
}

// adjustSetup changes the household row under the cursor.
func (m *Model) adjustSetup(delta int) {
	h := &m.household
	switch m.setupCursor {
	case setupChildren:
		h.Children = clamp(h.Children+delta, 0, maxChildren)
	case setupEmployedA:
		h.EmployedA = !h.EmployedA
	case setupEmployedB:
		h.EmployedB = !h.EmployedB
	case setupPets:
		h.HasPets = !h.HasPets
	case setupVehicle:
		h.HasVehicle = !h.HasVehicle
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (m *Model) setReport(r *results.Report) {
	m.report = r
	items := make([]list.Item, len(r.Hotspots))
	for i, h := range r.Hotspots {
		items[i] = hotspotItem{h: h}
	}
	m.hotspots.SetItems(items)
	m.hotspots.Select(0)
}
