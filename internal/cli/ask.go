package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [text]",
		Short: "Ask a single question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	cmd.Flags().Bool("json", false, "Output reply, intent and preferences as JSON")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	b, err := newBot(cmd.Context())
	if err != nil {
		exitErr("start bot", err)
	}

	reply := b.Respond(strings.Join(args, " "))
	if !asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		return
	}

	out, _ := json.MarshalIndent(reply, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
}
