// Package hotspot flags rated tasks that are worth a conversation and ranks
// them.
package hotspot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

// Priority weights.
const (
	burdenWeight   = 10
	fairnessWeight = 15
	fairnessCeil   = 6
)

// Thresholds decide when a condition holds.
type Thresholds struct {
	// ImbalanceDistance is the minimum |responsibility-50| for imbalance.
	ImbalanceDistance int
	// HighBurdenMin is the minimum burden that counts as draining.
	HighBurdenMin int
	// LowFairnessMax is the maximum fairness that counts as unfair. An
	// older rule used 2; 3 is the current default.
	LowFairnessMax int
}

// DefaultThresholds returns the standard thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ImbalanceDistance: 30,
		HighBurdenMin:     4,
		LowFairnessMax:    3,
	}
}

// Validate checks the thresholds lie within the rating scales.
func (t Thresholds) Validate() error {
	var errs []error
	if t.ImbalanceDistance < 1 || t.ImbalanceDistance > 50 {
		errs = append(errs, fmt.Errorf("imbalance_distance must be between 1 and 50, got %d", t.ImbalanceDistance))
	}
	if t.HighBurdenMin < rating.MinBurden || t.HighBurdenMin > rating.MaxBurden {
		errs = append(errs, fmt.Errorf("high_burden_min must be between %d and %d, got %d",
			rating.MinBurden, rating.MaxBurden, t.HighBurdenMin))
	}
	if t.LowFairnessMax < rating.MinFairness || t.LowFairnessMax > rating.MaxFairness {
		errs = append(errs, fmt.Errorf("low_fairness_max must be between %d and %d, got %d",
			rating.MinFairness, rating.MaxFairness, t.LowFairnessMax))
	}
	return errors.Join(errs...)
}

// Hotspot is one flagged task.
type Hotspot struct {
	TaskID   string         `json:"task_id"`
	Task     string         `json:"task"`
	Pillar   catalog.Pillar `json:"pillar"`
	Reasons  Reasons        `json:"reasons"`
	Priority int            `json:"priority"`

	Responsibility int `json:"responsibility"`
	Burden         int `json:"burden"`
	Fairness       int `json:"fairness"`
}

// Question returns the conversation starter for the hotspot.
func (h Hotspot) Question() string {
	return h.Reasons.Question()
}

// Detector applies the threshold rules. The zero value is not useful;
// build one with NewDetector.
type Detector struct {
	thresholds Thresholds
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{thresholds: thresholds}
}

// Thresholds returns the detector's thresholds.
func (d *Detector) Thresholds() Thresholds {
	return d.thresholds
}

// Detect returns the flagged tasks ordered by descending priority. Ties
// keep input order. Not-applicable and invalid ratings are skipped.
func (d *Detector) Detect(ratings []rating.Rating) []Hotspot {
	out := []Hotspot{}

	for _, r := range ratings {
		if h, ok := d.Check(r); ok {
			out = append(out, h)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})

	return out
}

// Check evaluates one rating. It reports false when no condition holds,
// and for not-applicable or invalid ratings.
func (d *Detector) Check(r rating.Rating) (Hotspot, bool) {
	if !r.Applicable() || r.Validate() != nil {
		return Hotspot{}, false
	}

	distance := r.Responsibility - rating.SharedResponsibility
	if distance < 0 {
		distance = -distance
	}

	imbalanced := distance >= d.thresholds.ImbalanceDistance
	highBurden := r.Burden >= d.thresholds.HighBurdenMin
	lowFairness := r.Fairness <= d.thresholds.LowFairnessMax

	var reasons Reasons
	priority := 0

	if imbalanced {
		reasons = append(reasons, ReasonImbalance)
		priority += distance
	}
	if highBurden {
		reasons = append(reasons, ReasonHighBurden)
		priority += r.Burden * burdenWeight
	}
	if lowFairness {
		reasons = append(reasons, ReasonLowFairness)
		priority += (fairnessCeil - r.Fairness) * fairnessWeight
	}
	if imbalanced && lowFairness {
		reasons = append(reasons, ReasonPriority)
	}

	if len(reasons) == 0 {
		return Hotspot{}, false
	}

	return Hotspot{
		TaskID:         r.Task.ID,
		Task:           r.Task.Name,
		Pillar:         r.Task.Pillar,
		Reasons:        reasons,
		Priority:       priority,
		Responsibility: r.Responsibility,
		Burden:         r.Burden,
		Fairness:       r.Fairness,
	}, true
}

var defaultDetector = NewDetector(DefaultThresholds())

// Detect runs the default detector.
func Detect(ratings []rating.Rating) []Hotspot {
	return defaultDetector.Detect(ratings)
}
