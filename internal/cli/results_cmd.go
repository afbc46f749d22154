package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/mentalload/internal/results"
)

var resultsCmd = &cobra.Command{
	Use:   "results <session-id>",
	Short: "Show the results of a session on the running server",
	Long: `Fetch and print the results of a questionnaire session.

With --export the CSV download is saved as well:

  mentalload results 0192f3c4-... --export mental_load_results.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVarP(&exportPath, "export", "o", "", "also save the CSV export to this path")
	rootCmd.AddCommand(resultsCmd)
}

// sessionResults mirrors the server's results body.
type sessionResults struct {
	SessionID string `json:"session_id"`
	results.Report
	Notes map[string]string `json:"notes"`
}

func runResults(cmd *cobra.Command, args []string) error {
	client := NewClient()
	base := "/sessions/" + url.PathEscape(args[0])

	data, status, err := client.Get(base + "/results")
	if err != nil {
		return fmt.Errorf("failed to get results: %w", err)
	}
	if status != http.StatusOK {
		return apiError(data, status)
	}

	if exportPath != "" {
		csvData, status, err := client.Get(base + "/export")
		if err != nil {
			return fmt.Errorf("failed to get export: %w", err)
		}
		if status != http.StatusOK {
			return apiError(csvData, status)
		}
		if err := os.WriteFile(exportPath, csvData, 0644); err != nil {
			return fmt.Errorf("failed to save export: %w", err)
		}
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var res sessionResults
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("failed to parse results: %w", err)
	}

	renderReport(os.Stdout, res.Report, res.Notes)
	if exportPath != "" {
		fmt.Println(mutedStyle.Render("\nExport written to " + exportPath))
	}
	return nil
}
