// internal/game/session.go
//
// Session state for a single Target game.
// Responsibilities:
//   - Create new games: solve the board against the dictionary up front.
//   - Classify submitted guesses (correct / duplicate / unknown / invalid).
//   - Track found and unknown-but-valid words until the game is finished.
//
// Notes:
//   - The solved word set is immutable for the life of the game; guesses
//     never mutate the board or its letter budget.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robalobadob/target/go-server/internal/grid"
)

// GuessResult classifies a single submitted guess.
// Possible values:
//   - "correct":   a dictionary word formable from the board, first time seen.
//   - "duplicate": already found (or already recorded as unknown) this game.
//   - "unknown":   formable by the rules but absent from the dictionary.
//   - "invalid":   fails the rules (too short, bad letters, over budget,
//     or missing the middle letter).
type GuessResult string

const (
	GuessCorrect   GuessResult = "correct"
	GuessDuplicate GuessResult = "duplicate"
	GuessUnknown   GuessResult = "unknown"
	GuessInvalid   GuessResult = "invalid"
)

// ErrFinished is returned for guesses submitted after Finish.
var ErrFinished = errors.New("game finished")

// Game holds the state of a single Target game session.
type Game struct {
	ID       string    // Unique game identifier (random hex string).
	Grid     grid.Grid // The 9-letter board.
	Possible []string  // Formable dictionary words, dictionary order.
	Found    []string  // Correct guesses in submission order.
	Unknown  []string  // Rule-valid guesses missing from the dictionary.
	Invalid  int       // Count of rejected guesses.
	Finished bool      // True once Finish has been called.

	counts      grid.Counts
	possibleSet map[string]struct{}
	guessed     map[string]struct{}
}

// New constructs a game for g, solving it against dict immediately.
func New(g grid.Grid, dict []string) *Game {
	possible := Solve(dict, g)
	set := make(map[string]struct{}, len(possible))
	for _, w := range possible {
		set[w] = struct{}{}
	}
	return &Game{
		ID:          randomID(),
		Grid:        g,
		Possible:    possible,
		Found:       []string{},
		Unknown:     []string{},
		counts:      g.LetterCounts(),
		possibleSet: set,
		guessed:     make(map[string]struct{}),
	}
}

// ApplyGuess normalizes and classifies one guess, mutating the session.
// Returns ErrFinished if the game is already over; every other input is
// classified, never rejected with an error.
func (g *Game) ApplyGuess(raw string) (GuessResult, error) {
	if g.Finished {
		return GuessInvalid, ErrFinished
	}
	word := strings.ToLower(strings.TrimSpace(raw))

	if !IsValid(word, g.counts, g.Grid.Middle()) {
		g.Invalid++
		return GuessInvalid, nil
	}
	if _, dup := g.guessed[word]; dup {
		return GuessDuplicate, nil
	}
	g.guessed[word] = struct{}{}

	if _, ok := g.possibleSet[word]; ok {
		g.Found = append(g.Found, word)
		return GuessCorrect, nil
	}
	g.Unknown = append(g.Unknown, word)
	return GuessUnknown, nil
}

// Finish closes the game and returns its report. Calling Finish again
// returns the same report.
func (g *Game) Finish() Report {
	g.Finished = true
	return g.Report()
}

// Report builds the current score sheet without closing the game.
func (g *Game) Report() Report {
	missed := []string{}
	for _, w := range g.Possible {
		if _, ok := g.guessed[w]; !ok {
			missed = append(missed, w)
		}
	}
	return Report{
		Grid:     g.Grid,
		Correct:  len(g.Found),
		Possible: g.Possible,
		Found:    g.Found,
		Missed:   missed,
		Unknown:  g.Unknown,
	}
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
