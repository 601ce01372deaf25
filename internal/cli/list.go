package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/gamebot/internal/model"
	"github.com/rcliao/gamebot/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		Run:   runList,
	}

	cmd.Flags().StringP("genre", "g", "", "Filter by genre")
	cmd.Flags().StringP("platform", "p", "", "Filter by platform")
	cmd.Flags().String("length", "", "Filter by session length (short, medium, long)")
	cmd.Flags().IntP("limit", "l", 50, "Max results")
	cmd.Flags().Bool("names-only", false, "Only output genre/name pairs")

	catalogCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	genre, _ := cmd.Flags().GetString("genre")
	platform, _ := cmd.Flags().GetString("platform")
	length, _ := cmd.Flags().GetString("length")
	limit, _ := cmd.Flags().GetInt("limit")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	games, err := s.List(cmd.Context(), store.ListParams{
		Category: model.Category(strings.ToLower(genre)),
		Platform: model.Platform(platform),
		Length:   model.SessionLength(length),
		Limit:    limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if namesOnly {
		for _, g := range games {
			fmt.Printf("%s/%s\n", g.Category, g.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(games, "", "  ")
	fmt.Println(string(b))
}
