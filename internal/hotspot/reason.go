package hotspot

import (
	"fmt"
	"strings"
)

// Reason tags why a task was flagged.
type Reason string

const (
	ReasonImbalance   Reason = "imbalance"
	ReasonHighBurden  Reason = "high_burden"
	ReasonLowFairness Reason = "low_fairness"
	// ReasonPriority is added on top of imbalance and low fairness when
	// both hold.
	ReasonPriority Reason = "priority"
)

var reasonLabels = map[Reason]string{
	ReasonImbalance:   "One partner handles most of this",
	ReasonHighBurden:  "This feels particularly draining",
	ReasonLowFairness: "This doesn't feel fair to one or both partners",
	ReasonPriority:    "PRIORITY: Imbalanced AND feels unfair",
}

// Discussion questions, one per reason plus a fallback.
const (
	QuestionPriority    = "This feels both imbalanced and unfair. What would need to change for it to feel better?"
	QuestionImbalance   = "How did this pattern develop? Would a different split work better?"
	QuestionHighBurden  = "What makes this feel so heavy? Is it the task itself or the mental energy around it?"
	QuestionLowFairness = "What would make this feel fairer to both of you?"
	QuestionFallback    = "What's one small thing that might make this easier?"
)

// IsValid checks if the reason is a known tag.
func (r Reason) IsValid() bool {
	_, ok := reasonLabels[r]
	return ok
}

// Label returns the human-readable text for the reason.
func (r Reason) Label() string {
	if l, ok := reasonLabels[r]; ok {
		return l
	}
	return string(r)
}

// String returns string representation.
func (r Reason) String() string {
	return string(r)
}

// ParseReason converts a tag name.
func ParseReason(s string) (Reason, error) {
	r := Reason(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown hotspot reason %q", s)
	}
	return r, nil
}

// Reasons is the ordered tag list of one hotspot.
type Reasons []Reason

// Has reports whether the list contains r.
func (rs Reasons) Has(r Reason) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// Labels renders every tag.
func (rs Reasons) Labels() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Label()
	}
	return out
}

// String joins the labels for display.
func (rs Reasons) String() string {
	return strings.Join(rs.Labels(), " | ")
}

// Question picks one conversation starter. Precedence is priority,
// imbalance, high burden, low fairness; anything else, including an empty
// list, gets the fallback.
func (rs Reasons) Question() string {
	switch {
	case rs.Has(ReasonPriority):
		return QuestionPriority
	case rs.Has(ReasonImbalance):
		return QuestionImbalance
	case rs.Has(ReasonHighBurden):
		return QuestionHighBurden
	case rs.Has(ReasonLowFairness):
		return QuestionLowFairness
	default:
		return QuestionFallback
	}
}
