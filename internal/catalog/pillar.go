package catalog

import "fmt"

// Pillar is one of the five kinds of cognitive labor a task belongs to.
type Pillar string

const (
	PillarAnticipation   Pillar = "anticipation"
	PillarIdentification Pillar = "identification"
	PillarDecision       Pillar = "decision"
	PillarMonitoring     Pillar = "monitoring"
	PillarEmotional      Pillar = "emotional"
)

// Pillars lists every pillar in display order.
var Pillars = []Pillar{
	PillarAnticipation,
	PillarIdentification,
	PillarDecision,
	PillarMonitoring,
	PillarEmotional,
}

var pillarLabels = map[Pillar]string{
	PillarAnticipation:   "Anticipation",
	PillarIdentification: "Identification",
	PillarDecision:       "Decision-making",
	PillarMonitoring:     "Monitoring",
	PillarEmotional:      "Emotional labor",
}

// IsValid checks if the pillar is one of the known values.
func (p Pillar) IsValid() bool {
	_, ok := pillarLabels[p]
	return ok
}

// Label returns the display name.
func (p Pillar) Label() string {
	if l, ok := pillarLabels[p]; ok {
		return l
	}
	return string(p)
}

// String returns string representation.
func (p Pillar) String() string {
	return string(p)
}

// ParsePillar converts a raw pillar name.
func ParsePillar(s string) (Pillar, error) {
	p := Pillar(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown pillar %q", s)
	}
	return p, nil
}
