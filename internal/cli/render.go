package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/results"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	partnerAStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	partnerBStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

const (
	splitBarWidth  = 40
	pillarBarWidth = 16
	// shownStarters is how many hotspots get their question printed
	// without --verbose.
	shownStarters = 3
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReport writes the human-readable results.
func renderReport(w io.Writer, report results.Report, notes map[string]string) {
	s := report.Summary

	fmt.Fprintln(w, headerStyle.Render("=== The Big Picture ==="))
	fmt.Fprintf(w, "\nInvisible work share   %s   %s\n",
		partnerAStyle.Render(fmt.Sprintf("Partner A %3d%%", s.PartnerAShare)),
		partnerBStyle.Render(fmt.Sprintf("Partner B %3d%%", s.PartnerBShare)))
	fmt.Fprintf(w, "  %s\n", splitBar(s.PartnerAShare, splitBarWidth))
	fmt.Fprintf(w, "  %s\n", verdictStyle(report.Insights.Share).Render(report.Insights.Share.Message()))

	fmt.Fprintf(w, "\nBurden (0-100)         %s   %s\n",
		partnerAStyle.Render(fmt.Sprintf("Partner A %3d", s.PartnerABurden)),
		partnerBStyle.Render(fmt.Sprintf("Partner B %3d", s.PartnerBBurden)))
	if report.Insights.Heavier != "" {
		fmt.Fprintf(w, "  %s\n", verdictStyle(report.Insights.Burden).Render(
			fmt.Sprintf("Partner %s reports feeling more burdened.", report.Insights.Heavier)))
	} else {
		fmt.Fprintf(w, "  %s\n", okStyle.Render("Both partners report similar burden levels."))
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  %d rated task(s) scored", s.Applicable)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== The Five Pillars ==="))
	fmt.Fprintln(w)
	renderPillars(w, report)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== Conversation Starters ==="))
	fmt.Fprintln(w)
	renderStarters(w, report)

	if len(report.Insights.BalancedAreas) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, okStyle.Render("Areas showing good balance: "+strings.Join(report.Insights.BalancedAreas, ", ")))
	}

	if len(notes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("=== Your Notes ==="))
		fmt.Fprintln(w)
		for _, p := range catalog.Pillars {
			if text, ok := notes[string(p)]; ok {
				fmt.Fprintf(w, "%s: %s\n", p.Label(), text)
			}
		}
		if text, ok := notes["results"]; ok {
			fmt.Fprintf(w, "Results: %s\n", text)
		}
	}
}

func renderPillars(w io.Writer, report results.Report) {
	// Scale bars against the largest pillar total so they compare.
	var peak float64
	for _, row := range report.Pillars {
		peak = math.Max(peak, math.Max(row.PartnerA, row.PartnerB))
	}

	for _, row := range report.Pillars {
		fmt.Fprintf(w, "%-16s %s %s %5.2f   %s %s %5.2f\n",
			row.Label,
			partnerAStyle.Render("A"), partnerAStyle.Render(bar(row.PartnerA, peak, pillarBarWidth)), row.PartnerA,
			partnerBStyle.Render("B"), partnerBStyle.Render(bar(row.PartnerB, peak, pillarBarWidth)), row.PartnerB,
		)
	}
}

func renderStarters(w io.Writer, report results.Report) {
	if !report.HasHotspots() {
		fmt.Fprintln(w, okStyle.Render("No major conversation starters detected. Still, check in now and then: circumstances change."))
		return
	}

	fmt.Fprintf(w, "%d area(s) suggest an imbalance, high burden or fairness concern. Start with one.\n\n", len(report.Hotspots))

	for i, h := range report.Hotspots {
		if i == shownStarters && !verbose {
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("... and %d more (use --verbose to list all)", len(report.Hotspots)-shownStarters)))
			break
		}
		fmt.Fprintf(w, "%d. %s %s\n", i+1, h.Task, mutedStyle.Render(fmt.Sprintf("[%s, priority %d]", h.Pillar, h.Priority)))
		fmt.Fprintf(w, "   Why it came up: %s\n", warnStyle.Render(strings.Join(h.Why, " | ")))
		fmt.Fprintf(w, "   Discuss: %s\n", h.Question)
	}
}

// splitBar draws partner A's share from the left and B's from the right.
func splitBar(aShare, width int) string {
	a := int(math.Round(float64(aShare) / 100 * float64(width)))
	a = min(max(a, 0), width)
	return partnerAStyle.Render(strings.Repeat("█", a)) + partnerBStyle.Render(strings.Repeat("█", width-a))
}

func bar(value, peak float64, width int) string {
	filled := 0
	if peak > 0 {
		filled = int(math.Round(value / peak * float64(width)))
	}
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func verdictStyle(v results.Verdict) lipgloss.Style {
	switch v {
	case results.VerdictBalanced:
		return okStyle
	case results.VerdictCommon:
		return mutedStyle
	default:
		return warnStyle
	}
}
