package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/export"
	"github.com/haskel/mentalload/internal/hotspot"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Score a saved answers file",
	Long: `Score a YAML or JSON answers file and print the results.

The file holds the household and one entry per rated task:

  version: 1
  household: {children: 1, employed_a: true, employed_b: true}
  ratings:
    - {task_id: cooking, responsibility: 70, burden: 3, fairness: 4}
    - {task_id: bills_admin, responsibility: 85, burden: 2, fairness: 2}

Scoring runs locally with the configured thresholds unless --remote is
given, in which case the running server scores it.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scoreRemote bool
	exportPath  string
)

func init() {
	scoreCmd.Flags().BoolVar(&scoreRemote, "remote", false, "score on the running server")
	scoreCmd.Flags().StringVarP(&exportPath, "export", "o", "", "also write the CSV export to this path")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, err := rating.LoadFile(args[0])
	if err != nil {
		return err
	}

	set, err := doc.Set(catalog.Default())
	if err == nil {
		err = checkHousehold(set, doc.Household)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	var report results.Report
	if scoreRemote {
		report, err = scoreOnServer(doc)
		if err != nil {
			return err
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		report = results.Compute(set.Ratings(), hotspot.NewDetector(cfg.Thresholds()))
	}

	if exportPath != "" {
		if err := writeExport(exportPath, export.Input{
			Ratings: set.Ratings(),
			Report:  report,
			Notes:   doc.Notes,
		}); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(os.Stdout, report)
	}

	renderReport(os.Stdout, report, doc.Notes)
	if exportPath != "" {
		fmt.Println(mutedStyle.Render("\nExport written to " + exportPath))
	}
	return nil
}

func scoreOnServer(doc *rating.Document) (results.Report, error) {
	data, status, err := NewClient().Post("/score", doc)
	if err != nil {
		return results.Report{}, fmt.Errorf("failed to score: %w", err)
	}
	if status != http.StatusOK {
		return results.Report{}, apiError(data, status)
	}

	var report results.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return results.Report{}, fmt.Errorf("failed to parse report: %w", err)
	}
	return report, nil
}

func writeExport(path string, in export.Input) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}
	if err := export.WriteCSV(f, in); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	return f.Close()
}

// checkHousehold rejects ratings for tasks the household does not have,
// the same rule the session API applies.
func checkHousehold(set *rating.Set, h catalog.Household) error {
	var errs []error
	for _, r := range set.Ratings() {
		if !r.Task.Applies(h) {
			errs = append(errs, fmt.Errorf("%w: %s", session.ErrTaskNotApplicable, r.Task.ID))
		}
	}
	return errors.Join(errs...)
}
