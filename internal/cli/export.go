package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as YAML",
		Long:  "Export the active catalog as YAML. Uses --catalog or the database, falling back to the built-in games.",
		Run:   runExport,
	}

	catalogCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		exitErr("load catalog", err)
	}

	if err := c.Encode(os.Stdout); err != nil {
		exitErr("export", err)
	}
}
