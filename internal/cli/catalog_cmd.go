package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/mentalload/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the household tasks that can be rated",
	Long: `List the task catalog grouped by pillar.

Passing any household flag filters the list to the tasks that apply:

  mentalload catalog                          # every task
  mentalload catalog --children 2 --pets      # family with a pet
  mentalload catalog --employed-b=false       # one partner not working`,
	RunE: runCatalog,
}

var household = catalog.DefaultHousehold()

func init() {
	addHouseholdFlags(catalogCmd)
	rootCmd.AddCommand(catalogCmd)
}

// addHouseholdFlags binds the household flags shared by catalog and sample.
func addHouseholdFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&household.Children, "children", household.Children, "number of children")
	cmd.Flags().BoolVar(&household.EmployedA, "employed-a", household.EmployedA, "partner A is employed")
	cmd.Flags().BoolVar(&household.EmployedB, "employed-b", household.EmployedB, "partner B is employed")
	cmd.Flags().BoolVar(&household.HasPets, "pets", household.HasPets, "household has pets")
	cmd.Flags().BoolVar(&household.HasVehicle, "vehicle", household.HasVehicle, "household has a vehicle")
}

func householdChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"children", "employed-a", "employed-b", "pets", "vehicle"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if household.Children < 0 {
		return fmt.Errorf("--children must not be negative")
	}

	cat := catalog.Default()
	tasks := cat.All()
	if householdChanged(cmd) {
		tasks = cat.Filter(household)
	}
	sections := catalog.GroupByPillar(tasks)

	if jsonOut {
		return printJSON(os.Stdout, sections)
	}

	for i, sec := range sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%d)", sec.Label, len(sec.Tasks))))
		for _, t := range sec.Tasks {
			fmt.Printf("  %-26s %s\n", t.ID, t.Name)
			if verbose && t.Definition != "" {
				fmt.Println(mutedStyle.Render("      " + t.Definition))
			}
		}
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("\n%d of %d tasks", len(tasks), cat.Len())))
	return nil
}
