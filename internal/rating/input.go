package rating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haskel/mentalload/internal/catalog"
)

// Input is the wire shape of a rating: a task id plus raw values.
type Input struct {
	TaskID         string `json:"task_id" yaml:"task_id"`
	Responsibility int    `json:"responsibility" yaml:"responsibility"`
	Burden         int    `json:"burden" yaml:"burden"`
	Fairness       int    `json:"fairness" yaml:"fairness"`
	NotApplicable  bool   `json:"not_applicable" yaml:"not_applicable"`
}

// Build resolves the task and validates the values.
func (in Input) Build(lookup catalog.Lookup) (Rating, error) {
	task, ok := lookup.Lookup(in.TaskID)
	if !ok {
		return Rating{}, fmt.Errorf("%w: %q", ErrUnknownTask, in.TaskID)
	}
	r, err := New(task, in.Responsibility, in.Burden, in.Fairness, in.NotApplicable)
	if err != nil {
		return Rating{}, fmt.Errorf("task %s: %w", in.TaskID, err)
	}
	return r, nil
}

// Resolve turns wire inputs into a Set. A later input for the same task
// overwrites an earlier one. All problems are reported together; no
// partial set is returned on error.
func Resolve(lookup catalog.Lookup, inputs []Input) (*Set, error) {
	set := NewSet()

	var unknown []string
	var errs []error
	for _, in := range inputs {
		r, err := in.Build(lookup)
		if err != nil {
			if errors.Is(err, ErrUnknownTask) {
				unknown = append(unknown, in.TaskID)
				continue
			}
			errs = append(errs, err)
			continue
		}
		set.Put(r)
	}

	if len(unknown) > 0 {
		errs = append([]error{fmt.Errorf("%w: %s", ErrUnknownTask, strings.Join(unknown, ", "))}, errs...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}
