package cli

import (
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the game catalog database",
}

func init() {
	RootCmd.AddCommand(catalogCmd)
}
