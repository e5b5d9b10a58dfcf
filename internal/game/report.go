// internal/game/report.go
//
// Score sheet for a finished (or in-progress) game, plus the flat-text
// rendering used by the console client's results file.
package game

import (
	"fmt"
	"io"

	"github.com/robalobadob/target/go-server/internal/grid"
)

// Report is the score sheet for one game.
type Report struct {
	Grid     grid.Grid `json:"-"`
	Correct  int       `json:"correct"`  // number of dictionary words found
	Possible []string  `json:"possible"` // all formable dictionary words
	Found    []string  `json:"found"`    // correct guesses, submission order
	Missed   []string  `json:"missed"`   // possible words never guessed
	Unknown  []string  `json:"unknown"`  // rule-valid guesses not in dictionary
}

// WriteReport renders rep as the plain-text results log.
func WriteReport(w io.Writer, rep Report) error {
	write := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	}
	if err := write("Results"); err != nil {
		return err
	}
	if err := write("-------"); err != nil {
		return err
	}
	if err := write("Grid: %s (middle letter: %c)", rep.Grid.String(), rep.Grid.Middle()); err != nil {
		return err
	}
	if err := write("Correct words: %d", rep.Correct); err != nil {
		return err
	}
	sections := []struct {
		title string
		words []string
	}{
		{"Possible words:", rep.Possible},
		{"Forgotten words:", rep.Missed},
		{"Unknown user words:", rep.Unknown},
	}
	for _, s := range sections {
		if err := write("%s", s.title); err != nil {
			return err
		}
		for _, word := range s.words {
			if err := write("  %s", word); err != nil {
				return err
			}
		}
	}
	return nil
}
