package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/gamebot/internal/intent"
	"github.com/rcliao/gamebot/internal/model"
	"github.com/rcliao/gamebot/internal/prefs"
)

type classification struct {
	Intent      model.Intent      `json:"intent"`
	Preferences model.Preferences `json:"preferences"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Show the intent and preferences detected in a message",
		Args: func(cmd *cobra.Command, args []string) error {
			if rules, _ := cmd.Flags().GetBool("rules"); rules {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		Run: runClassify,
	}

	cmd.Flags().Bool("rules", false, "Print the keyword rule table in evaluation order")

	RootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	if rules, _ := cmd.Flags().GetBool("rules"); rules {
		for i, r := range intent.Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %-20s %s\n", i+1, r.Intent, strings.Join(r.Keywords, ", "))
		}
		return
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		exitErr("load catalog", err)
	}

	text := strings.Join(args, " ")
	out := classification{
		Intent:      intent.Classify(text),
		Preferences: prefs.NewExtractor(c.Categories()).Extract(text),
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
