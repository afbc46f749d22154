package session

import (
	"fmt"
	"strings"
)

// Stage is a step of the questionnaire flow.
type Stage string

const (
	StageHome          Stage = "home"
	StageConsent       Stage = "consent"
	StageSetup         Stage = "setup"
	StageQuestionnaire Stage = "questionnaire"
	StageResults       Stage = "results"
	StageLearnMore     Stage = "learn_more"
)

// Stages lists every stage in flow order.
var Stages = []Stage{StageHome, StageConsent, StageSetup, StageQuestionnaire, StageResults, StageLearnMore}

// transitions lists the allowed forward and backward moves. Moving to home
// is always allowed and not listed.
var transitions = map[Stage][]Stage{
	StageHome:          {StageConsent, StageLearnMore},
	StageLearnMore:     {},
	StageConsent:       {StageSetup},
	StageSetup:         {StageConsent, StageQuestionnaire},
	StageQuestionnaire: {StageSetup, StageResults},
	StageResults:       {StageQuestionnaire},
}

// IsValid checks if the stage is known.
func (s Stage) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// String returns string representation.
func (s Stage) String() string {
	return string(s)
}

// CanMoveTo reports whether the flow allows moving from s to next. Guards
// that depend on session data are checked by Session.MoveTo.
func (s Stage) CanMoveTo(next Stage) bool {
	if !next.IsValid() {
		return false
	}
	if next == StageHome {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStage converts a stage name.
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown stage %q", s)
	}
	return st, nil
}
