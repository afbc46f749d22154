// Package results combines the summary and the hotspot list into one report.
package results

import (
	"github.com/haskel/mentalload/internal/hotspot"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/score"
)

// Hotspot is a detector hotspot with its rendered text attached.
type Hotspot struct {
	hotspot.Hotspot
	Why      []string `json:"why"`
	Question string   `json:"question"`
}

// Report is the full result view of a rating set.
type Report struct {
	Summary  score.Summary     `json:"summary"`
	Pillars  []score.PillarRow `json:"pillars"`
	Hotspots []Hotspot         `json:"hotspots"`
	Insights Insights          `json:"insights"`
}

// Compute builds a report. A nil detector uses the default thresholds.
func Compute(ratings []rating.Rating, detector *hotspot.Detector) Report {
	summary := score.Summarize(ratings)

	var found []hotspot.Hotspot
	if detector != nil {
		found = detector.Detect(ratings)
	} else {
		found = hotspot.Detect(ratings)
	}

	views := make([]Hotspot, len(found))
	for i, h := range found {
		views[i] = Hotspot{
			Hotspot:  h,
			Why:      h.Reasons.Labels(),
			Question: h.Question(),
		}
	}

	return Report{
		Summary:  summary,
		Pillars:  summary.Breakdown(),
		Hotspots: views,
		Insights: Interpret(summary, ratings),
	}
}

// HasHotspots reports whether anything was flagged.
func (r Report) HasHotspots() bool {
	return len(r.Hotspots) > 0
}
