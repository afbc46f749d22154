// Package export renders a finished questionnaire as a CSV download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
)

// Filename is the suggested download name.
const Filename = "mental_load_results.csv"

// ContentType is the MIME type of the export.
const ContentType = "text/csv; charset=utf-8"

// Block titles.
const (
	TitleSummary  = "SUMMARY"
	TitlePillars  = "PILLAR BREAKDOWN"
	TitleStarters = "CONVERSATION STARTERS"
	TitleNotes    = "YOUR CONVERSATION NOTES"
)

// Input is everything an export needs.
type Input struct {
	Ratings []rating.Rating
	Report  results.Report
	// Notes keyed by page: a pillar name or a free-form key such as
	// "results".
	Notes map[string]string
}

// WriteCSV writes the export blocks separated by two blank lines.
func WriteCSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)

	blocks := []func(*csv.Writer) error{
		func(cw *csv.Writer) error { return writeRatings(cw, in.Ratings) },
		func(cw *csv.Writer) error { return writeSummary(cw, in.Report) },
		func(cw *csv.Writer) error { return writePillars(cw, in.Report) },
	}
	if in.Report.HasHotspots() {
		blocks = append(blocks, func(cw *csv.Writer) error { return writeStarters(cw, in.Report) })
	}
	if rows := noteRows(in.Notes); len(rows) > 0 {
		blocks = append(blocks, func(cw *csv.Writer) error { return writeNotes(cw, rows) })
	}

	for i, block := range blocks {
		if i > 0 {
			if err := separator(cw); err != nil {
				return err
			}
		}
		if err := block(cw); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func separator(cw *csv.Writer) error {
	for range 2 {
		if err := cw.Write(nil); err != nil {
			return err
		}
	}
	return nil
}

func writeRatings(cw *csv.Writer, ratings []rating.Rating) error {
	rows := [][]string{{"task_id", "responsibility", "burden", "fairness", "not_applicable"}}
	for _, r := range ratings {
		rows = append(rows, []string{
			r.Task.ID,
			strconv.Itoa(r.Responsibility),
			strconv.Itoa(r.Burden),
			strconv.Itoa(r.Fairness),
			strconv.FormatBool(r.NotApplicable),
		})
	}
	return cw.WriteAll(rows)
}

func writeSummary(cw *csv.Writer, report results.Report) error {
	s := report.Summary
	return writeTitled(cw, TitleSummary, [][]string{
		{"Metric", "Value"},
		{"Partner A load (0–100)", strconv.Itoa(s.PartnerABurden)},
		{"Partner B load (0–100)", strconv.Itoa(s.PartnerBBurden)},
		{"Partner A invisible share (%)", strconv.Itoa(s.PartnerAShare)},
		{"Partner B invisible share (%)", strconv.Itoa(s.PartnerBShare)},
	})
}

func writePillars(cw *csv.Writer, report results.Report) error {
	rows := [][]string{{"Pillar", "Partner A sum", "Partner B sum"}}
	for _, row := range report.Summary.Breakdown() {
		rows = append(rows, []string{row.Label, formatSum(row.PartnerA), formatSum(row.PartnerB)})
	}
	return writeTitled(cw, TitlePillars, rows)
}

func writeStarters(cw *csv.Writer, report results.Report) error {
	rows := [][]string{{"Task", "Why it matters", "Question to discuss"}}
	for _, h := range report.Hotspots {
		rows = append(rows, []string{h.Task, strings.Join(h.Why, " | "), h.Question})
	}
	return writeTitled(cw, TitleStarters, rows)
}

func writeNotes(cw *csv.Writer, notes [][]string) error {
	rows := append([][]string{{"Page", "Notes"}}, notes...)
	return writeTitled(cw, TitleNotes, rows)
}

func writeTitled(cw *csv.Writer, title string, rows [][]string) error {
	if err := cw.Write([]string{title}); err != nil {
		return err
	}
	return cw.WriteAll(rows)
}

// noteRows orders pillar pages first in display order, then any other
// pages alphabetically. Blank notes are dropped.
func noteRows(notes map[string]string) [][]string {
	var rows [][]string
	seen := make(map[string]bool, len(notes))

	for _, p := range catalog.Pillars {
		key := string(p)
		seen[key] = true
		if text := strings.TrimSpace(notes[key]); text != "" {
			rows = append(rows, []string{p.Label(), text})
		}
	}

	var rest []string
	for key := range notes {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	for _, key := range rest {
		if text := strings.TrimSpace(notes[key]); text != "" {
			rows = append(rows, []string{key, text})
		}
	}
	return rows
}

func formatSum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}
