package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlayer string
	flagPlain  bool
	flagLimit  int
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recently finished games",
	Long: `List finished games from the journal, newest first.

Opens an interactive table in a terminal. Use --plain (or pipe the output)
for a text listing. --clear deletes the whole journal.

Examples:
  tetris history
  tetris history --player alice
  tetris history --plain --limit 5
  tetris history --clear`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show games of this player")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games in the text listing")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded game")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening game journal: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.GameCount("")
		if err != nil {
			return err
		}
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d recorded games.\n", n)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, flagPlayer, width, height)
	}

	games, err := store.RecentGames(flagPlayer, flagLimit)
	if err != nil {
		return fmt.Errorf("reading game journal: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WHEN", "PLAYER", "SCORE", "LINES", "LEVEL", "PIECES", "TIME")
	for _, row := range tui.HistoryRows(games) {
		t.Row(row...)
	}
	fmt.Fprintln(out, t)
	return nil
}
