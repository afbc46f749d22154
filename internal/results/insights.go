package results

import (
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/score"
)

// Verdict grades how far apart the two partners are.
type Verdict string

const (
	VerdictBalanced Verdict = "balanced"
	VerdictCommon   Verdict = "common"
	VerdictSkewed   Verdict = "skewed"
)

// Gap limits, in points, for the verdicts.
const (
	balancedGap = 15
	commonGap   = 30
)

// Tasks within this distance of an even split count as balanced areas.
const (
	balancedAreaDistance = 20
	maxBalancedAreas     = 5
)

// Partner names one side of the couple.
type Partner string

const (
	PartnerA Partner = "A"
	PartnerB Partner = "B"
)

// Insights interpret a summary for display.
type Insights struct {
	Share Verdict `json:"share"`

	Burden Verdict `json:"burden"`
	// Heavier is the partner with the higher burden score; empty when the
	// burden verdict is balanced.
	Heavier Partner `json:"heavier,omitempty"`

	// BalancedAreas names up to five tasks that are shared roughly evenly.
	BalancedAreas []string `json:"balanced_areas"`
}

// Interpret grades the summary and collects balanced areas from the
// ratings.
func Interpret(summary score.Summary, ratings []rating.Rating) Insights {
	in := Insights{
		Share:         grade(summary.PartnerAShare - summary.PartnerBShare),
		Burden:        grade(summary.PartnerABurden - summary.PartnerBBurden),
		BalancedAreas: []string{},
	}

	if in.Burden != VerdictBalanced {
		in.Heavier = PartnerB
		if summary.PartnerABurden > summary.PartnerBBurden {
			in.Heavier = PartnerA
		}
	}

	for _, r := range ratings {
		if len(in.BalancedAreas) == maxBalancedAreas {
			break
		}
		if !r.Applicable() {
			continue
		}
		if abs(r.Responsibility-rating.SharedResponsibility) <= balancedAreaDistance {
			in.BalancedAreas = append(in.BalancedAreas, r.Task.Name)
		}
	}

	return in
}

// Message is the one-line reading of a share verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictBalanced:
		return "Your household shows relatively balanced mental load."
	case VerdictCommon:
		return "Your split is common. Does it feel sustainable to both of you?"
	default:
		return "This pattern is common but can lead to burnout. It is changeable."
	}
}

func grade(gap int) Verdict {
	gap = abs(gap)
	switch {
	case gap <= balancedGap:
		return VerdictBalanced
	case gap <= commonGap:
		return VerdictCommon
	default:
		return VerdictSkewed
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
