package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/session"
)

const barWidth = 30

// View renders the TUI
func (m Model) View() string {
	if m.session == nil && m.err == nil {
		return "Starting session..."
	}

	var sections []string
	sections = append(sections, m.renderTitleBar())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.session != nil {
		switch m.stage {
		case session.StageHome:
			sections = append(sections, m.renderHome())
		case session.StageLearnMore:
			sections = append(sections, m.renderLearnMore())
		case session.StageConsent:
			sections = append(sections, m.renderConsent())
		case session.StageSetup:
			sections = append(sections, m.renderSetup())
		case session.StageQuestionnaire:
			sections = append(sections, m.renderQuestionnaire())
		case session.StageResults:
			sections = append(sections, m.renderResults())
		}
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("MENTAL LOAD CHECK-IN")
	if m.busy {
		return title + helpStyle.Render("  working...")
	}
	return title
}

func (m Model) renderHome() string {
	lines := []string{
		"",
		textStyle.Render("Much of running a home is invisible: noticing what is needed,"),
		textStyle.Render("deciding, keeping track and worrying. This check-in helps the two"),
		textStyle.Render("of you see how that work is split and where it feels heavy."),
		"",
		textStyle.Render("It takes about 15 minutes. Answer together, one task at a time."),
		"",
		helpStyle.Render("enter: begin   l: learn more"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLearnMore() string {
	lines := []string{
		"",
		sectionHeaderStyle.Render("The five pillars"),
		"",
	}
	descriptions := map[catalog.Pillar]string{
		catalog.PillarAnticipation:   "thinking ahead about what will be needed",
		catalog.PillarIdentification: "noticing what needs doing right now",
		catalog.PillarDecision:       "weighing options and choosing",
		catalog.PillarMonitoring:     "following up until things are done",
		catalog.PillarEmotional:      "keeping everyone's feelings in mind",
	}
	for _, p := range catalog.Pillars {
		lines = append(lines, fmt.Sprintf("  %s %s",
			valueStyle.Render(fmt.Sprintf("%-16s", p.Label())),
			labelStyle.Render(descriptions[p])))
	}
	lines = append(lines,
		"",
		textStyle.Render("Scores are a starting point for a conversation, not a verdict."),
		"",
		helpStyle.Render("esc: back"),
	)
	return strings.Join(lines, "\n")
}

func (m Model) renderConsent() string {
	lines := []string{
		"",
		sectionHeaderStyle.Render("Before you start"),
		"",
		textStyle.Render("  Both partners should agree to take part and answer honestly."),
		textStyle.Render("  Answers stay in this session and are deleted when it expires."),
		textStyle.Render("  This is not therapy. If talking about it feels unsafe, stop here."),
		"",
		helpStyle.Render("y: we agree   n: go back"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSetup() string {
	h := m.household
	rows := []struct {
		label string
		value string
	}{
		{"Children", fmt.Sprintf("%d", h.Children)},
		{"Partner A employed", yesNo(h.EmployedA)},
		{"Partner B employed", yesNo(h.EmployedB)},
		{"Pets", yesNo(h.HasPets)},
		{"Vehicle", yesNo(h.HasVehicle)},
	}

	lines := []string{"", sectionHeaderStyle.Render("Your household"), ""}
	for i, row := range rows {
		lines = append(lines, m.formRow(i == m.setupCursor, row.label, row.value))
	}
	lines = append(lines,
		"",
		helpStyle.Render("↑↓: move   ←→/space: change   enter: continue   esc: back"),
	)
	return strings.Join(lines, "\n")
}

func (m Model) formRow(focused bool, label, value string) string {
	cursor := "  "
	if focused {
		cursor = cursorStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", cursor, labelStyle.Render(fmt.Sprintf("%-20s", label)), valueStyle.Render(value))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m Model) renderQuestionnaire() string {
	task, ok := m.currentTask()
	if !ok {
		return "\n" + textStyle.Render("No tasks apply to this household.") + "\n\n" +
			helpStyle.Render("r: results   esc: back")
	}

	d := m.draft
	lines := []string{
		"",
		labelStyle.Render(fmt.Sprintf("%s  ·  task %d of %d  ·  %d rated",
			task.Pillar.Label(), m.taskIdx+1, len(m.tasks), m.session.Rated)),
		sectionHeaderStyle.Render(task.Name),
		"",
	}

	if d.NotApplicable {
		lines = append(lines, warnStyle.Render("  Marked as not applicable"))
	} else {
		lines = append(lines,
			m.formRow(m.fieldCursor == fieldResponsibility, "Who handles it",
				fmt.Sprintf("%s %s", splitBar(d.Responsibility, 20), responsibilityText(d.Responsibility))),
			m.formRow(m.fieldCursor == fieldBurden, "How draining",
				fmt.Sprintf("%d / %d", d.Burden, rating.MaxBurden)),
			m.formRow(m.fieldCursor == fieldFairness, "How fair it feels",
				fmt.Sprintf("%d / %d", d.Fairness, rating.MaxFairness)),
		)
	}

	if m.status != "" {
		lines = append(lines, "", okStyle.Render(m.status))
	}
	lines = append(lines,
		"",
		helpStyle.Render("↑↓: field   ←→: adjust   x: n/a   enter: save   n/p: next/prev   r: results   esc: household"),
	)
	return strings.Join(lines, "\n")
}

func responsibilityText(v int) string {
	switch {
	case v == rating.SharedResponsibility:
		return "shared evenly"
	case v < rating.SharedResponsibility:
		return fmt.Sprintf("mostly A (%d%% B)", v)
	default:
		return fmt.Sprintf("mostly B (%d%% B)", v)
	}
}

// splitBar draws partner A's share on the left and B's on the right.
func splitBar(bShare, width int) string {
	b := clamp(bShare*width/100, 0, width)
	return partnerAStyle.Render(strings.Repeat("█", width-b)) +
		partnerBStyle.Render(strings.Repeat("█", b))
}

func gauge(label string, v, width int) string {
	filled := clamp(v*width/100, 0, width)
	bar := lipgloss.NewStyle().Foreground(burdenColor(v)).Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("  %s [%s] %3d", labelStyle.Render(fmt.Sprintf("%-10s", label)), bar, v)
}

func (m Model) renderResults() string {
	if m.report == nil {
		return ""
	}
	r := m.report
	s := r.Summary

	lines := []string{
		"",
		sectionHeaderStyle.Render("Invisible work share"),
		fmt.Sprintf("  %s %s %s",
			partnerAStyle.Render(fmt.Sprintf("A %3d%%", s.PartnerAShare)),
			splitBar(s.PartnerBShare, barWidth),
			partnerBStyle.Render(fmt.Sprintf("%3d%% B", s.PartnerBShare))),
		"  " + labelStyle.Render(r.Insights.Share.Message()),
		"",
		sectionHeaderStyle.Render("Burden"),
		gauge("Partner A", s.PartnerABurden, barWidth),
		gauge("Partner B", s.PartnerBBurden, barWidth),
		"  " + labelStyle.Render(burdenNote(r.Insights)),
		"",
		m.renderPillars(r),
		"",
	}

	if r.HasHotspots() {
		lines = append(lines, m.hotspots.View())
	} else {
		lines = append(lines, okStyle.Render("  Nothing stands out. Keep checking in with each other."))
	}

	if m.status != "" {
		lines = append(lines, "", okStyle.Render(m.status))
	}
	lines = append(lines, "", helpStyle.Render("↑↓: hotspots   e: export csv   esc: back to tasks"))
	return strings.Join(lines, "\n")
}

func burdenNote(in results.Insights) string {
	msg := in.Burden.Message()
	if in.Heavier != "" {
		msg = fmt.Sprintf("%s Partner %s carries more.", msg, in.Heavier)
	}
	return msg
}

func (m Model) renderPillars(r *results.Report) string {
	lines := []string{sectionHeaderStyle.Render("By pillar")}
	for _, row := range r.Pillars {
		total := row.PartnerA + row.PartnerB
		b := 50
		if total > 0 {
			b = int(row.PartnerB / total * 100)
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			labelStyle.Render(fmt.Sprintf("%-16s", row.Label)),
			splitBar(b, 20),
			valueStyle.Render(fmt.Sprintf("A %.1f  B %.1f", row.PartnerA, row.PartnerB))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.session == nil {
		return helpStyle.Render("q: quit")
	}
	return helpStyle.Render(fmt.Sprintf("  Session %s │ %s │ q: quit", shortID(m.session.ID), m.stage))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
