package results

import (
	"testing"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/hotspot"
	"github.com/haskel/mentalload/internal/rating"
)

func ratings(t *testing.T) []rating.Rating {
	t.Helper()
	cat := catalog.Default()

	inputs := []rating.Input{
		{TaskID: "bills_admin", Responsibility: 85, Burden: 2, Fairness: 2},
		{TaskID: "cooking", Responsibility: 50, Burden: 3, Fairness: 4},
		{TaskID: "laundry", Responsibility: 60, Burden: 5, Fairness: 4},
	}
	set, err := rating.Resolve(cat, inputs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return set.Ratings()
}

func TestCompute(t *testing.T) {
	report := Compute(ratings(t), nil)

	if report.Summary.Applicable != 3 {
		t.Errorf("expected 3 applicable, got %d", report.Summary.Applicable)
	}
	if len(report.Pillars) != len(catalog.Pillars) {
		t.Errorf("expected %d pillar rows, got %d", len(catalog.Pillars), len(report.Pillars))
	}
	if len(report.Hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(report.Hotspots))
	}

	top := report.Hotspots[0]
	if top.TaskID != "bills_admin" {
		t.Errorf("expected bills_admin first, got %s", top.TaskID)
	}
	if top.Question != hotspot.QuestionPriority {
		t.Errorf("unexpected question %q", top.Question)
	}
	if len(top.Why) != 3 {
		t.Errorf("expected 3 labels, got %v", top.Why)
	}

	second := report.Hotspots[1]
	if second.TaskID != "laundry" || second.Question != hotspot.QuestionHighBurden {
		t.Errorf("unexpected second hotspot %+v", second)
	}
}

func TestCompute_CustomDetector(t *testing.T) {
	th := hotspot.DefaultThresholds()
	th.HighBurdenMin = 5
	th.LowFairnessMax = 1

	report := Compute(ratings(t), hotspot.NewDetector(th))

	if len(report.Hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(report.Hotspots))
	}
	for _, h := range report.Hotspots {
		if h.Reasons.Has(hotspot.ReasonLowFairness) {
			t.Errorf("fairness 2 should not flag with threshold 1: %+v", h)
		}
	}
}

func TestCompute_Empty(t *testing.T) {
	report := Compute(nil, nil)

	if report.HasHotspots() {
		t.Error("expected no hotspots")
	}
	if report.Hotspots == nil {
		t.Error("expected empty, non-nil hotspot list")
	}
	if report.Summary.PartnerAShare != 50 || report.Summary.PartnerBShare != 50 {
		t.Errorf("expected 50/50 default, got %+v", report.Summary)
	}
}
