// internal/grid/grid.go
//
// The 3x3 letter grid for the Target game.
// Responsibilities:
//   - Represent the board as 9 flattened lowercase letters (row-major).
//   - Designate the middle letter (flattened index 4) that every valid
//     word must contain.
//   - Derive the per-letter availability counts used by the validator.
//   - Generate random grids from an injectable rand source (deterministic
//     grids for tests and the daily mode come from seeding that source).
//   - Parse grids from user/API-supplied strings.

package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Size is the number of letters on the board (3x3, flattened).
const Size = 9

// middleIndex is the flattened position of the mandatory letter.
const middleIndex = 4

// Grid is a flattened 3x3 board of lowercase ASCII letters.
type Grid [Size]byte

// Counts holds the availability budget for each letter 'a'..'z',
// indexed by letter-'a'. The sum of all entries is always Size.
type Counts [26]int

// ErrBadGrid is returned by Parse for input that is not exactly
// nine lowercase letters.
var ErrBadGrid = errors.New("grid must be exactly 9 letters a-z")

// NewRandom draws nine letters independently from a-z using r.
// Callers that need reproducible grids seed r themselves.
func NewRandom(r *rand.Rand) Grid {
	var g Grid
	for i := range g {
		g[i] = byte('a' + r.Intn(26))
	}
	return g
}

// Parse builds a Grid from s. Whitespace is ignored; uppercase is folded
// to lowercase. Anything else, or a letter count other than nine, is an
// error.
func Parse(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			if n == Size {
				return Grid{}, ErrBadGrid
			}
			g[n] = byte(r)
			n++
		case r >= 'A' && r <= 'Z':
			if n == Size {
				return Grid{}, ErrBadGrid
			}
			g[n] = byte(r - 'A' + 'a')
			n++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return Grid{}, fmt.Errorf("grid contains disallowed character %q", r)
		}
	}
	if n != Size {
		return Grid{}, ErrBadGrid
	}
	return g, nil
}

// Middle returns the mandatory letter (flattened index 4).
func (g Grid) Middle() byte { return g[middleIndex] }

// Letters returns the flattened letters as a string, e.g. "testmings".
func (g Grid) Letters() string { return string(g[:]) }

// String renders the grid one row per group, e.g. "tes tmi ngs".
func (g Grid) String() string {
	return string(g[0:3]) + " " + string(g[3:6]) + " " + string(g[6:9])
}

// Rows returns the 3x3 shape for display.
func (g Grid) Rows() [3]string {
	return [3]string{string(g[0:3]), string(g[3:6]), string(g[6:9])}
}

// LetterCounts derives the availability budget from the grid.
// Computed once per grid; read-only afterwards.
func (g Grid) LetterCounts() Counts {
	var c Counts
	for _, b := range g {
		c[b-'a']++
	}
	return c
}

// Has reports whether letter b appears on the board at all.
// Non-letter bytes report false.
func (c Counts) Has(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return c[b-'a'] > 0
}

// Of returns the budget for letter b, zero for non-letters.
func (c Counts) Of(b byte) int {
	if b < 'a' || b > 'z' {
		return 0
	}
	return c[b-'a']
}

// Total returns the sum of all counts. Always Size for a grid-derived
// Counts; exposed for tests and sanity checks.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Distinct returns the distinct letters present, in alphabet order.
func (c Counts) Distinct() string {
	var sb strings.Builder
	for i, v := range c {
		if v > 0 {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}
