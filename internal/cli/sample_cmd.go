package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a sample answers file",
	Long: `Generate synthetic answers for every task that applies to the household.

Scenarios: balanced, imbalanced, mixed, random. The output can be fed to
"mentalload score":

  mentalload sample --scenario imbalanced --children 2 -o answers.yaml
  mentalload score answers.yaml`,
	RunE: runSample,
}

var (
	sampleScenario string
	sampleSeed     uint64
	sampleOut      string
)

func init() {
	sampleCmd.Flags().StringVar(&sampleScenario, "scenario", string(sample.ScenarioBalanced), "balanced, imbalanced, mixed or random")
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0, "random seed (0 picks one from the clock)")
	sampleCmd.Flags().StringVarP(&sampleOut, "output", "o", "", "write to file (.yaml, .yml or .json); stdout if empty")
	addHouseholdFlags(sampleCmd)
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	scenario, err := sample.ParseScenario(sampleScenario)
	if err != nil {
		return err
	}
	if household.Children < 0 {
		return fmt.Errorf("--children must not be negative")
	}

	seed := sampleSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cat := catalog.Default()
	inputs := sample.NewGenerator(seed).Generate(cat.Filter(household), scenario)
	set, err := rating.Resolve(cat, inputs)
	if err != nil {
		return err
	}
	doc := rating.NewDocument(household, set, sample.Notes())

	if sampleOut != "" {
		if err := rating.SaveFile(sampleOut, doc); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote %d ratings (%s, seed %d) to %s\n", set.Len(), scenario, seed, sampleOut)
		}
		return nil
	}

	if jsonOut {
		return printJSON(os.Stdout, doc)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
