// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play      - Play in this terminal
//	tetris serve     - Start SSH server for remote play
//	tetris history   - Browse recently finished games
//	tetris defaults  - Print the default rules file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set journal path (default: ~/.tetris/games.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game on a 10x20 board.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  history   - Browse recently finished games
  defaults  - Print the default rules file

Examples:
  tetris
  tetris play --difficulty hard
  tetris serve --ssh :2222
  tetris history`,
	Run:           runPlay,
	SilenceErrors: true, // main prints the error once
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/games.db", "Path to the game journal")

	addRuleFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(defaultsCmd)
}
