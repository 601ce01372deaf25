package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import games from YAML",
		Long:  "Import a YAML catalog (file or stdin) in the format produced by export. Existing games with the same genre and name are replaced.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Import the built-in catalog",
		Run: func(cmd *cobra.Command, args []string) {
			importCatalog(cmd, catalog.Default())
		},
	}

	catalogCmd.AddCommand(cmd, seed)
}

func runImport(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		r = f
	}

	c, err := catalog.Decode(r)
	if err != nil {
		exitErr("parse yaml", err)
	}
	importCatalog(cmd, c)
}

func importCatalog(cmd *cobra.Command, c *catalog.Catalog) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), c)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
