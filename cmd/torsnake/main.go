// torsnake is a terminal snake game played on a toroidal grid: the
// snake wraps around the board edges, grows on apples, shrinks on
// poison and collapses when it bites itself.
//
// Usage:
//
//	torsnake play      - Play in the current terminal
//	torsnake serve     - Start SSH server for remote play
//	torsnake scores    - Show high scores
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.torsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "torsnake",
	Short: "Snake on a torus, in your terminal",
	Long: `torsnake is a terminal snake game on a wrap-around board.

Steer with the arrow keys, WASD or HJKL. Apples grow the snake,
poison shrinks it, and running into your own body collapses the
snake back to a single cell. The best length of the session is
your score.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  torsnake play
  torsnake play --config ./my-config.yaml
  torsnake serve --ssh :2222
  torsnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.torsnake/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
