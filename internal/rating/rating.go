// Package rating defines the per-task assessment a couple submits and the
// validated set of assessments for one session.
package rating

import (
	"errors"
	"fmt"

	"github.com/haskel/mentalload/internal/catalog"
)

// Value ranges.
const (
	MinResponsibility = 0
	MaxResponsibility = 100
	MinBurden         = 1
	MaxBurden         = 5
	MinFairness       = 1
	MaxFairness       = 5

	// SharedResponsibility marks a task split evenly between partners.
	SharedResponsibility = 50
)

var (
	// ErrInvalidRating is wrapped by every range violation.
	ErrInvalidRating = errors.New("invalid rating")
	// ErrUnknownTask is returned when a task id cannot be resolved.
	ErrUnknownTask = errors.New("unknown task")
)

// Rating is one assessment of one task. New validates the values; a
// composite literal does not, so scoring re-checks with Validate and skips
// ratings that fail.
type Rating struct {
	Task catalog.Task

	// Responsibility is 0 when partner A owns the task entirely,
	// 100 when partner B does, 50 when it is shared.
	Responsibility int
	// Burden is the felt mental drain, 1 (light) to 5 (heavy).
	Burden int
	// Fairness is how fair the split feels, 1 (unfair) to 5 (fair).
	Fairness int

	NotApplicable bool
}

// New validates the values and builds a Rating.
func New(task catalog.Task, responsibility, burden, fairness int, notApplicable bool) (Rating, error) {
	r := Rating{
		Task:           task,
		Responsibility: responsibility,
		Burden:         burden,
		Fairness:       fairness,
		NotApplicable:  notApplicable,
	}
	if err := r.Validate(); err != nil {
		return Rating{}, err
	}
	return r, nil
}

// Validate reports every out-of-range field.
func (r Rating) Validate() error {
	var errs []error

	if r.Task.ID == "" {
		errs = append(errs, fmt.Errorf("%w: task id is required", ErrInvalidRating))
	}
	if !r.Task.Pillar.IsValid() {
		errs = append(errs, fmt.Errorf("%w: task %q has unknown pillar %q", ErrInvalidRating, r.Task.ID, r.Task.Pillar))
	}
	if r.Responsibility < MinResponsibility || r.Responsibility > MaxResponsibility {
		errs = append(errs, fmt.Errorf("%w: responsibility must be between %d and %d, got %d",
			ErrInvalidRating, MinResponsibility, MaxResponsibility, r.Responsibility))
	}
	if r.Burden < MinBurden || r.Burden > MaxBurden {
		errs = append(errs, fmt.Errorf("%w: burden must be between %d and %d, got %d",
			ErrInvalidRating, MinBurden, MaxBurden, r.Burden))
	}
	if r.Fairness < MinFairness || r.Fairness > MaxFairness {
		errs = append(errs, fmt.Errorf("%w: fairness must be between %d and %d, got %d",
			ErrInvalidRating, MinFairness, MaxFairness, r.Fairness))
	}

	return errors.Join(errs...)
}

// Applicable reports whether the rating takes part in scoring.
func (r Rating) Applicable() bool {
	return !r.NotApplicable
}

// ShareA is partner A's fraction of the task, 0..1.
func (r Rating) ShareA() float64 {
	return float64(MaxResponsibility-r.Responsibility) / MaxResponsibility
}

// ShareB is partner B's fraction of the task, 0..1.
func (r Rating) ShareB() float64 {
	return float64(r.Responsibility) / MaxResponsibility
}

// Input returns the wire form of the rating.
func (r Rating) Input() Input {
	return Input{
		TaskID:         r.Task.ID,
		Responsibility: r.Responsibility,
		Burden:         r.Burden,
		Fairness:       r.Fairness,
		NotApplicable:  r.NotApplicable,
	}
}
