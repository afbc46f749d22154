package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the server is up",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	if err := NewClient().Health(); err != nil {
		if jsonOut {
			fmt.Printf(`{"healthy":false,"error":%q}`+"\n", err.Error())
		}
		return err
	}

	if jsonOut {
		fmt.Println(`{"healthy":true}`)
	} else {
		fmt.Printf("Server at %s is healthy\n", GetServerURL())
	}
	return nil
}
