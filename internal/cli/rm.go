package cli

import (
	"fmt"

	"github.com/rcliao/gamebot/internal/model"
	"github.com/rcliao/gamebot/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a stored game",
		Run:   runRm,
	}

	cmd.Flags().StringP("genre", "g", "", "Genre (required)")
	cmd.Flags().StringP("name", "n", "", "Game name (required)")

	cmd.MarkFlagRequired("genre")
	cmd.MarkFlagRequired("name")

	catalogCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	genre, _ := cmd.Flags().GetString("genre")
	name, _ := cmd.Flags().GetString("name")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	err = s.Rm(cmd.Context(), store.RmParams{
		Category: model.Category(genre),
		Name:     name,
	})
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"genre":%q,"name":%q}`+"\n", genre, name)
}
