// Package sample fills a questionnaire with synthetic answers for demos and
// manual testing.
package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
)

// Scenario selects the shape of the generated answers.
type Scenario string

const (
	ScenarioBalanced   Scenario = "balanced"
	ScenarioImbalanced Scenario = "imbalanced"
	ScenarioMixed      Scenario = "mixed"
	ScenarioRandom     Scenario = "random"
)

// Scenarios lists every scenario.
var Scenarios = []Scenario{ScenarioBalanced, ScenarioImbalanced, ScenarioMixed, ScenarioRandom}

// mixedImbalancedRatio is the chance a task is skewed in the mixed scenario.
const mixedImbalancedRatio = 0.3

// ParseScenario converts a scenario name. Empty means balanced.
func ParseScenario(s string) (Scenario, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ScenarioBalanced, nil
	}
	for _, sc := range Scenarios {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown scenario %q (expected one of balanced, imbalanced, mixed, random)", s)
}

// Notes returns the section notes that accompany a generated session.
func Notes() map[string]string {
	return map[string]string{
		string(catalog.PillarAnticipation): "Sample note: This section felt heavy",
		string(catalog.PillarEmotional):    "Sample note: Lots to discuss here",
	}
}

// Generator produces answers. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator; the same seed yields the same answers.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate answers every task. All answers are applicable.
func (g *Generator) Generate(tasks []catalog.Task, scenario Scenario) []rating.Input {
	out := make([]rating.Input, 0, len(tasks))
	for _, t := range tasks {
		in := g.answer(scenario)
		in.TaskID = t.ID
		out = append(out, in)
	}
	return out
}

func (g *Generator) answer(scenario Scenario) rating.Input {
	switch scenario {
	case ScenarioImbalanced:
		return rating.Input{
			Responsibility: g.between(10, 35),
			Burden:         g.between(3, 5),
			Fairness:       g.between(1, 3),
		}
	case ScenarioMixed:
		if g.rng.Float64() >= mixedImbalancedRatio {
			return g.balanced()
		}
		resp := g.between(10, 30)
		if g.rng.IntN(2) == 1 {
			resp = g.between(70, 90)
		}
		return rating.Input{
			Responsibility: resp,
			Burden:         g.between(3, 5),
			Fairness:       g.between(2, 4),
		}
	case ScenarioRandom:
		return rating.Input{
			Responsibility: g.between(rating.MinResponsibility, rating.MaxResponsibility),
			Burden:         g.between(rating.MinBurden, rating.MaxBurden),
			Fairness:       g.between(rating.MinFairness, rating.MaxFairness),
		}
	default:
		return g.balanced()
	}
}

func (g *Generator) balanced() rating.Input {
	return rating.Input{
		Responsibility: g.between(40, 60),
		Burden:         g.between(2, 4),
		Fairness:       g.between(3, 5),
	}
}

// between returns a value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
