package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rcliao/gamebot/internal/bot"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const chatHelp = `Commands:
  help     show this message
  clear    clear the screen
  summary  show conversation statistics
  quit     leave (also: exit)

Try: "recommend action games for pc", "tell me about the witcher",
"is celeste worth playing", "give me a tip", "tell me a fun fact".`

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Run:   runChat,
	}

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	b, err := newBot(cmd.Context())
	if err != nil {
		exitErr("start bot", err)
	}
	chatLoop(b, os.Stdin, cmd.OutOrStdout())
}

// chatLoop reads one utterance per line until quit, exit or end of input.
func chatLoop(b *bot.Bot, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, bannerStyle.Render("GameBot - your video game companion"))
	fmt.Fprintln(out, dimStyle.Render("Type 'help' for commands, 'quit' to leave."))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptStyle.Render("you> "))
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(out, botStyle.Render("bot> Thanks for chatting! Happy gaming!"))
			fmt.Fprintln(out, dimStyle.Render(b.Summary()))
			return
		case "help":
			fmt.Fprintln(out, dimStyle.Render(chatHelp))
			continue
		case "clear":
			fmt.Fprint(out, "\033[H\033[2J")
			continue
		case "summary":
			fmt.Fprintln(out, dimStyle.Render(b.Summary()))
			continue
		}

		fmt.Fprintln(out, botStyle.Render("bot> "+b.GenerateReply(line)))
	}
	fmt.Fprintln(out, dimStyle.Render(b.Summary()))
}
