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
		Use:   "search [query]",
		Short: "Search games by keyword",
		Long:  "Search game names, descriptions and features for matching text, optionally within one genre or above a rating.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("genre", "g", "", "Only games in this genre")
	cmd.Flags().Float64("min-rating", 0, "Only games rated at least this")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	catalogCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	genre, _ := cmd.Flags().GetString("genre")
	minRating, _ := cmd.Flags().GetFloat64("min-rating")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query:     query,
		Category:  model.Category(strings.ToLower(genre)),
		MinRating: minRating,
		Limit:     limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(results) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(b))
}
