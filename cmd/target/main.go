// cmd/target/main.go
//
// Console client for the Target game, no server required.
// Flow: print the 3x3 board, read one guess per line from stdin until EOF
// (Ctrl-D, or Ctrl-Z then Enter on Windows), then print the score sheet
// and write it to a results file.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/target/go-server/internal/game"
	"github.com/robalobadob/target/go-server/internal/grid"
	"github.com/robalobadob/target/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		letters  string
		seed     int64
		dictFile string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Play the Target word game in the terminal",
		Long: `Play the Target word game: a 3x3 board of letters is shown and you
enter words of four letters or more, built only from the board's letters,
each containing the middle letter. Finish with end-of-input (Ctrl-D).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dictFile != "" {
				if err := os.Setenv("WORDS_DICT_FILE", dictFile); err != nil {
					return err
				}
			}
			if err := words.Init(); err != nil {
				return fmt.Errorf("load dictionary: %w", err)
			}

			var board grid.Grid
			if letters != "" {
				var err error
				board, err = grid.Parse(letters)
				if err != nil {
					return err
				}
			} else {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				board = grid.NewRandom(rand.New(rand.NewSource(seed)))
			}

			return play(cmd, board, outFile)
		},
	}

	cmd.Flags().StringVar(&letters, "letters", "", "fixed 9-letter board instead of a random one")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random board (0 = time-based)")
	cmd.Flags().StringVar(&dictFile, "dict", "", "word list file (default: embedded list)")
	cmd.Flags().StringVar(&outFile, "out", "results.txt", "file to write the results to")
	return cmd
}

// play runs one interactive game on the given board.
func play(cmd *cobra.Command, board grid.Grid, outFile string) error {
	out := cmd.OutOrStdout()

	for _, row := range board.Rows() {
		fmt.Fprintf(out, "%c %c %c\n", row[0], row[1], row[2])
	}
	fmt.Fprintf(out, "Middle letter: %c\n", board.Middle())

	g := game.New(board, words.All())

	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "Enter a word: ")
		if !sc.Scan() {
			break
		}
		res, err := g.ApplyGuess(sc.Text())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s\n", res)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	rep := g.Finish()
	fmt.Fprintln(out)
	if err := game.WriteReport(out, rep); err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()
	if err := game.WriteReport(f, rep); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	log.Info().Str("file", outFile).Msg("results written")
	return nil
}
