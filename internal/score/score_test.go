package score

import (
	"math"
	"reflect"
	"testing"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

func task(id string, p catalog.Pillar) catalog.Task {
	return catalog.Task{ID: id, Name: id, Pillar: p}
}

func rate(t *testing.T, id string, p catalog.Pillar, responsibility, burden, fairness int) rating.Rating {
	t.Helper()
	r, err := rating.New(task(id, p), responsibility, burden, fairness, false)
	if err != nil {
		t.Fatalf("rating.New: %v", err)
	}
	return r
}

func notApplicable(t *testing.T, id string, p catalog.Pillar) rating.Rating {
	t.Helper()
	r, err := rating.New(task(id, p), 100, 5, 1, true)
	if err != nil {
		t.Fatalf("rating.New: %v", err)
	}
	return r
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize_Empty(t *testing.T) {
	for name, ratings := range map[string][]rating.Rating{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			s := Summarize(ratings)

			if s.PartnerAShare != 50 || s.PartnerBShare != 50 {
				t.Errorf("expected shares 50/50, got %d/%d", s.PartnerAShare, s.PartnerBShare)
			}
			if s.PartnerABurden != 0 || s.PartnerBBurden != 0 {
				t.Errorf("expected burdens 0/0, got %d/%d", s.PartnerABurden, s.PartnerBBurden)
			}
			if len(s.Pillars) != 0 {
				t.Errorf("expected empty pillar map, got %v", s.Pillars)
			}
			if s.Applicable != 0 {
				t.Errorf("expected 0 applicable, got %d", s.Applicable)
			}
		})
	}
}

func TestSummarize_AllNotApplicable(t *testing.T) {
	s := Summarize([]rating.Rating{
		notApplicable(t, "a", catalog.PillarDecision),
		notApplicable(t, "b", catalog.PillarEmotional),
	})

	if s.PartnerAShare != 50 || s.PartnerBShare != 50 {
		t.Errorf("expected shares 50/50, got %d/%d", s.PartnerAShare, s.PartnerBShare)
	}
	if s.PartnerABurden != 0 || s.PartnerBBurden != 0 {
		t.Errorf("expected burdens 0/0, got %d/%d", s.PartnerABurden, s.PartnerBBurden)
	}
	if len(s.Pillars) != 0 {
		t.Errorf("expected empty pillar map, got %v", s.Pillars)
	}
}

func TestSummarize_SingleFullyPartnerB(t *testing.T) {
	s := Summarize([]rating.Rating{
		rate(t, "bills", catalog.PillarDecision, 100, 5, 1),
	})

	if s.PartnerBShare != 100 || s.PartnerAShare != 0 {
		t.Errorf("expected shares 0/100, got %d/%d", s.PartnerAShare, s.PartnerBShare)
	}
	if s.PartnerABurden != 0 || s.PartnerBBurden != 100 {
		t.Errorf("expected burdens 0/100, got %d/%d", s.PartnerABurden, s.PartnerBBurden)
	}

	ps, ok := s.Pillars[catalog.PillarDecision]
	if !ok {
		t.Fatal("expected decision pillar present")
	}
	if !approx(ps.PartnerA, 0.0) || !approx(ps.PartnerB, 5.0) {
		t.Errorf("expected pillar (0.0, 5.0), got (%f, %f)", ps.PartnerA, ps.PartnerB)
	}
}

func TestSummarize_SingleFullyPartnerA(t *testing.T) {
	s := Summarize([]rating.Rating{
		rate(t, "cooking", catalog.PillarIdentification, 0, 1, 5),
	})

	if s.PartnerABurden != 20 {
		t.Errorf("expected partner A burden 20, got %d", s.PartnerABurden)
	}
	if s.PartnerBBurden != 0 {
		t.Errorf("expected partner B burden 0, got %d", s.PartnerBBurden)
	}
	if s.PartnerAShare != 100 || s.PartnerBShare != 0 {
		t.Errorf("expected shares 100/0, got %d/%d", s.PartnerAShare, s.PartnerBShare)
	}
}

func TestSummarize_ExcludesNotApplicable(t *testing.T) {
	with := Summarize([]rating.Rating{
		rate(t, "a", catalog.PillarDecision, 20, 4, 3),
		notApplicable(t, "b", catalog.PillarEmotional),
	})
	without := Summarize([]rating.Rating{
		rate(t, "a", catalog.PillarDecision, 20, 4, 3),
	})

	if !reflect.DeepEqual(with, without) {
		t.Errorf("not-applicable rating changed the summary:\n%+v\n%+v", with, without)
	}
	if _, ok := with.Pillars[catalog.PillarEmotional]; ok {
		t.Error("pillar with only not-applicable ratings should be absent")
	}
}

func TestSummarize_MixedValues(t *testing.T) {
	s := Summarize([]rating.Rating{
		rate(t, "a", catalog.PillarAnticipation, 80, 4, 2),
		rate(t, "b", catalog.PillarAnticipation, 30, 2, 4),
		rate(t, "c", catalog.PillarEmotional, 50, 5, 3),
	})

	// mean B share = (0.8 + 0.3 + 0.5) / 3 = 0.5333 -> 53
	if s.PartnerBShare != 53 || s.PartnerAShare != 47 {
		t.Errorf("expected shares 47/53, got %d/%d", s.PartnerAShare, s.PartnerBShare)
	}

	// A: (80*0.2 + 40*0.7 + 100*0.5) / 3 = (16 + 28 + 50) / 3 = 31.33 -> 31
	// B: (80*0.8 + 40*0.3 + 100*0.5) / 3 = (64 + 12 + 50) / 3 = 42
	if s.PartnerABurden != 31 || s.PartnerBBurden != 42 {
		t.Errorf("expected burdens 31/42, got %d/%d", s.PartnerABurden, s.PartnerBBurden)
	}

	ant := s.Pillar(catalog.PillarAnticipation)
	if !approx(ant.PartnerA, 0.2*4+0.7*2) || !approx(ant.PartnerB, 0.8*4+0.3*2) {
		t.Errorf("unexpected anticipation scores %+v", ant)
	}
	emo := s.Pillar(catalog.PillarEmotional)
	if !approx(emo.PartnerA, 2.5) || !approx(emo.PartnerB, 2.5) {
		t.Errorf("unexpected emotional scores %+v", emo)
	}
	if s.Applicable != 3 {
		t.Errorf("expected 3 applicable, got %d", s.Applicable)
	}
}

func TestSummarize_SharesAlwaysSumTo100(t *testing.T) {
	values := []int{0, 1, 5, 13, 33, 34, 49, 50, 51, 66, 67, 85, 99, 100}

	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				s := Summarize([]rating.Rating{
					rate(t, "a", catalog.PillarDecision, a, 3, 3),
					rate(t, "b", catalog.PillarMonitoring, b, 2, 4),
					rate(t, "c", catalog.PillarEmotional, c, 5, 1),
				})
				if s.PartnerAShare+s.PartnerBShare != 100 {
					t.Fatalf("responsibilities %d,%d,%d: shares %d+%d != 100",
						a, b, c, s.PartnerAShare, s.PartnerBShare)
				}
				if s.PartnerAShare < 0 || s.PartnerBShare < 0 {
					t.Fatalf("negative share for %d,%d,%d", a, b, c)
				}
			}
		}
	}
}

func TestSummarize_BurdenIsNotConserved(t *testing.T) {
	// Both at 50% of a burden-5 task: each side gets 50, sum 100.
	// A burden-1 task shared evenly: each side gets 10, sum 20.
	heavy := Summarize([]rating.Rating{rate(t, "a", catalog.PillarDecision, 50, 5, 3)})
	light := Summarize([]rating.Rating{rate(t, "a", catalog.PillarDecision, 50, 1, 3)})

	if heavy.PartnerABurden != 50 || heavy.PartnerBBurden != 50 {
		t.Errorf("expected 50/50, got %d/%d", heavy.PartnerABurden, heavy.PartnerBBurden)
	}
	if light.PartnerABurden != 10 || light.PartnerBBurden != 10 {
		t.Errorf("expected 10/10, got %d/%d", light.PartnerABurden, light.PartnerBBurden)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	ratings := []rating.Rating{
		rate(t, "a", catalog.PillarAnticipation, 80, 4, 2),
		rate(t, "b", catalog.PillarMonitoring, 15, 5, 1),
		notApplicable(t, "c", catalog.PillarEmotional),
	}
	before := make([]rating.Rating, len(ratings))
	copy(before, ratings)

	first := Summarize(ratings)
	second := Summarize(ratings)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(before, ratings) {
		t.Error("Summarize mutated its input")
	}
}

func TestSummarize_BurdenMonotonic(t *testing.T) {
	for _, responsibility := range []int{0, 25, 50, 75, 100} {
		var prev Summary
		for burden := rating.MinBurden; burden <= rating.MaxBurden; burden++ {
			s := Summarize([]rating.Rating{
				rate(t, "fixed", catalog.PillarDecision, 40, 3, 3),
				rate(t, "moving", catalog.PillarDecision, responsibility, burden, 3),
			})
			if burden > rating.MinBurden {
				if s.PartnerABurden < prev.PartnerABurden || s.PartnerBBurden < prev.PartnerBBurden {
					t.Errorf("responsibility %d burden %d: burden score decreased", responsibility, burden)
				}
				cur, old := s.Pillar(catalog.PillarDecision), prev.Pillar(catalog.PillarDecision)
				if cur.PartnerA < old.PartnerA || cur.PartnerB < old.PartnerB {
					t.Errorf("responsibility %d burden %d: pillar total decreased", responsibility, burden)
				}
			}
			prev = s
		}
	}
}

func TestSummary_PillarDefaultsToZero(t *testing.T) {
	s := Summarize([]rating.Rating{rate(t, "a", catalog.PillarDecision, 50, 2, 3)})

	if got := s.Pillar(catalog.PillarEmotional); got != (PillarScore{}) {
		t.Errorf("expected zero score for missing pillar, got %+v", got)
	}
}

func TestSummary_Breakdown(t *testing.T) {
	s := Summarize([]rating.Rating{rate(t, "a", catalog.PillarMonitoring, 100, 4, 3)})

	rows := s.Breakdown()
	if len(rows) != len(catalog.Pillars) {
		t.Fatalf("expected %d rows, got %d", len(catalog.Pillars), len(rows))
	}
	for i, row := range rows {
		if row.Pillar != catalog.Pillars[i] {
			t.Errorf("row %d: expected %s, got %s", i, catalog.Pillars[i], row.Pillar)
		}
		if row.Pillar == catalog.PillarMonitoring {
			if !approx(row.PartnerB, 4.0) || !approx(row.PartnerA, 0) {
				t.Errorf("unexpected monitoring row %+v", row)
			}
			if !approx(row.Gap(), -4.0) {
				t.Errorf("expected gap -4, got %f", row.Gap())
			}
		} else if row.PillarScore != (PillarScore{}) {
			t.Errorf("expected zero row for %s, got %+v", row.Pillar, row.PillarScore)
		}
	}
}

func TestSummarize_RoundsHalfToEven(t *testing.T) {
	// mean B share 0.005 -> 0.5% rounds to 0
	s := Summarize([]rating.Rating{
		rate(t, "a", catalog.PillarDecision, 0, 1, 3),
		rate(t, "b", catalog.PillarDecision, 1, 1, 3),
	})
	if s.PartnerAShare != 100 || s.PartnerBShare != 0 {
		t.Errorf("expected shares 100/0, got %d/%d", s.PartnerAShare, s.PartnerBShare)
	}

	// A: (20 + 1) / 2 = 10.5 -> 10; B: (0 + 19) / 2 = 9.5 -> 10
	s = Summarize([]rating.Rating{
		rate(t, "a", catalog.PillarDecision, 0, 1, 3),
		rate(t, "b", catalog.PillarDecision, 95, 1, 3),
	})
	if s.PartnerABurden != 10 || s.PartnerBBurden != 10 {
		t.Errorf("expected burdens 10/10, got %d/%d", s.PartnerABurden, s.PartnerBBurden)
	}
}

func TestSummarize_SkipsInvalidRatings(t *testing.T) {
	valid := rate(t, "a", catalog.PillarDecision, 20, 4, 3)
	invalid := []rating.Rating{
		{Task: task("x", catalog.PillarDecision), Responsibility: 250, Burden: 9, Fairness: 3},
		{Task: task("y", catalog.PillarEmotional), Responsibility: -10, Burden: 3, Fairness: 3},
		{Task: task("z", catalog.PillarMonitoring), Responsibility: 50, Burden: 0, Fairness: 6},
	}

	got := Summarize(append(invalid, valid))
	want := Summarize([]rating.Rating{valid})

	if !reflect.DeepEqual(got, want) {
		t.Errorf("invalid ratings changed the summary:\n%+v\n%+v", got, want)
	}
	if got.PartnerAShare < 0 || got.PartnerBShare > 100 {
		t.Errorf("shares out of range: %d/%d", got.PartnerAShare, got.PartnerBShare)
	}

	empty := Summarize(invalid)
	if empty.PartnerAShare != 50 || empty.PartnerBShare != 50 || empty.Applicable != 0 {
		t.Errorf("expected neutral summary, got %+v", empty)
	}
}
