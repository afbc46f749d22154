package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/session"
)

func TestCheckHousehold(t *testing.T) {
	inputs := []rating.Input{
		{TaskID: "cooking", Responsibility: 50, Burden: 3, Fairness: 4},
		{TaskID: "pet_care", Responsibility: 80, Burden: 2, Fairness: 3},
		{TaskID: "vehicle_maintenance", Responsibility: 20, Burden: 2, Fairness: 3},
	}
	set, err := rating.Resolve(catalog.Default(), inputs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	tests := []struct {
		name      string
		household catalog.Household
		rejected  []string
	}{
		{"has both", catalog.Household{EmployedA: true, EmployedB: true, HasPets: true, HasVehicle: true}, nil},
		{"no pets", catalog.Household{EmployedA: true, EmployedB: true, HasVehicle: true}, []string{"pet_care"}},
		{"neither", catalog.DefaultHousehold(), []string{"pet_care", "vehicle_maintenance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHousehold(set, tt.household)
			if len(tt.rejected) == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, session.ErrTaskNotApplicable) {
				t.Fatalf("expected ErrTaskNotApplicable, got %v", err)
			}
			for _, id := range tt.rejected {
				if !strings.Contains(err.Error(), id) {
					t.Errorf("expected %s in error %q", id, err)
				}
			}
			if strings.Contains(err.Error(), "cooking") {
				t.Errorf("cooking applies to every household: %q", err)
			}
		})
	}
}
