package cli

import (
	"github.com/spf13/cobra"

	"github.com/haskel/mentalload/internal/cli/tui"
)

var tuiCmd = &cobra.Command{
	Use:     "questionnaire",
	Aliases: []string{"tui"},
	Short:   "Take the questionnaire in the terminal",
	Long: `Launch an interactive terminal questionnaire backed by a running
mentalload server. The session is created on the server, so the results can
also be fetched with "mentalload results".

Examples:
  mentalload questionnaire                    # local server
  mentalload questionnaire --host 10.0.0.1    # remote server`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	config := tui.Config{
		ServerURL: GetServerURL(),
		User:      user,
		Password:  password,
	}

	return tui.Run(config)
}
