// internal/game/rules.go
//
// Core rules for the Target game.
// Responsibilities:
//   - Decide whether a single word is formable from the board: minimum
//     length four, letters drawn only from the board, no letter used more
//     times than the board provides, and the middle letter present.
//   - Filter a dictionary down to the set of formable words.
//
// Notes:
//   - IsValid is a total, pure predicate: malformed input (empty strings,
//     digits, punctuation) simply fails a condition and yields false.
//   - Solve preserves dictionary order and collapses duplicates.
package game

import (
	"github.com/robalobadob/target/go-server/internal/grid"
)

// minWordLen is the shortest word the game accepts.
const minWordLen = 4

// IsValid reports whether word is formable from the given letter budget
// and contains the mandatory middle letter.
//
// All four conditions must hold:
//   - len(word) >= 4
//   - every character of word appears somewhere on the board
//   - no letter is used more times than the board provides
//   - middle occurs in word at least once
func IsValid(word string, counts grid.Counts, middle byte) bool {
	if len(word) < minWordLen {
		return false
	}

	// Letter usage within the word (a-z).
	var used [26]int
	hasMiddle := false

	for i := 0; i < len(word); i++ {
		b := word[i]
		if !counts.Has(b) {
			return false
		}
		j := b - 'a'
		used[j]++
		if used[j] > counts.Of(b) {
			return false
		}
		if b == middle {
			hasMiddle = true
		}
	}
	return hasMiddle
}

// Solve returns the dictionary words formable from g, in dictionary order
// with duplicates collapsed.
func Solve(dict []string, g grid.Grid) []string {
	counts := g.LetterCounts()
	middle := g.Middle()

	out := []string{}
	seen := make(map[string]struct{})
	for _, w := range dict {
		if _, dup := seen[w]; dup {
			continue
		}
		if IsValid(w, counts, middle) {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
