// Package score turns a session's ratings into headline load numbers and a
// per-pillar breakdown.
//
// Summarize is a pure function: it never mutates its input, keeps no state
// and is safe to call concurrently on the same slice.
package score

import (
	"math"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

// burdenScale maps burden 1..5 onto 20..100.
const burdenScale = 20

// PillarScore is the accumulated share-weighted burden of one pillar.
// Values are raw sums of burden (1..5) weighted by each partner's share,
// unbounded above.
type PillarScore struct {
	PartnerA float64 `json:"partner_a"`
	PartnerB float64 `json:"partner_b"`
}

// Summary is the aggregate view of a rating set.
type Summary struct {
	// Invisible share in percent; the two always sum to 100.
	PartnerAShare int `json:"partner_a_share_pct"`
	PartnerBShare int `json:"partner_b_share_pct"`

	// Share-weighted burden on a 0..100 gauge. Each side is rounded
	// independently; the pair has no fixed total.
	PartnerABurden int `json:"partner_a_burden"`
	PartnerBBurden int `json:"partner_b_burden"`

	// Pillars only holds pillars with at least one applicable rating.
	Pillars map[catalog.Pillar]PillarScore `json:"pillar_scores"`

	// Applicable is the number of ratings that were scored.
	Applicable int `json:"applicable"`
}

// Summarize computes the summary. Not-applicable ratings and ratings that
// fail validation are ignored. With nothing to score, shares are 50/50 and
// burdens 0/0. Halves round to even.
func Summarize(ratings []rating.Rating) Summary {
	applicable := make([]rating.Rating, 0, len(ratings))
	for _, r := range ratings {
		if r.Applicable() && r.Validate() == nil {
			applicable = append(applicable, r)
		}
	}

	aShare, bShare := shares(applicable)
	aBurden, bBurden := burdens(applicable)

	return Summary{
		PartnerAShare:  aShare,
		PartnerBShare:  bShare,
		PartnerABurden: aBurden,
		PartnerBBurden: bBurden,
		Pillars:        pillarScores(applicable),
		Applicable:     len(applicable),
	}
}

// shares rounds partner B's mean share and derives A from it so the pair
// always sums to 100.
func shares(applicable []rating.Rating) (int, int) {
	if len(applicable) == 0 {
		return 50, 50
	}

	var sum float64
	for _, r := range applicable {
		sum += r.ShareB()
	}
	b := int(math.RoundToEven(sum / float64(len(applicable)) * 100))
	return 100 - b, b
}

func burdens(applicable []rating.Rating) (int, int) {
	if len(applicable) == 0 {
		return 0, 0
	}

	var aSum, bSum float64
	for _, r := range applicable {
		scaled := float64(burdenScale * r.Burden)
		aSum += scaled * r.ShareA()
		bSum += scaled * r.ShareB()
	}
	n := float64(len(applicable))
	return int(math.RoundToEven(aSum / n)), int(math.RoundToEven(bSum / n))
}

func pillarScores(applicable []rating.Rating) map[catalog.Pillar]PillarScore {
	scores := make(map[catalog.Pillar]PillarScore)
	for _, r := range applicable {
		ps := scores[r.Task.Pillar]
		ps.PartnerA += r.ShareA() * float64(r.Burden)
		ps.PartnerB += r.ShareB() * float64(r.Burden)
		scores[r.Task.Pillar] = ps
	}
	return scores
}

// Pillar returns the score for a pillar, zero when it had no ratings.
func (s Summary) Pillar(p catalog.Pillar) PillarScore {
	return s.Pillars[p]
}

// PillarRow is one line of the full five-pillar breakdown.
type PillarRow struct {
	Pillar catalog.Pillar `json:"pillar"`
	Label  string         `json:"label"`
	PillarScore
}

// Breakdown lists every pillar in display order, filling gaps with zeros.
func (s Summary) Breakdown() []PillarRow {
	rows := make([]PillarRow, 0, len(catalog.Pillars))
	for _, p := range catalog.Pillars {
		rows = append(rows, PillarRow{
			Pillar:      p,
			Label:       p.Label(),
			PillarScore: s.Pillar(p),
		})
	}
	return rows
}

// Gap is partner A's minus partner B's pillar score.
func (ps PillarScore) Gap() float64 {
	return ps.PartnerA - ps.PartnerB
}
