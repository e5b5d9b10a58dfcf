// internal/words/words.go
//
// Dictionary management for the Target game.
//
// Responsibilities:
//   - Load the candidate word list from an environment-provided file or
//     fall back to the embedded default.
//   - Maintain a lookup set alongside the ordered list.
//   - Supply utility functions like All, Contains, and Stats.
//
// Word list format:
//   - Line-oriented text; the first three lines are a header and are
//     skipped (the standard list format this game has always shipped with).
//   - Remaining lines are candidate words; they are trimmed and lowercased,
//     and only all-alphabetic words of length >= 4 are kept — shorter words
//     can never be valid, so there is no point carrying them.
//
// Environment variables:
//   WORDS_DICT_FILE=/path/to/dictionary.txt
//
// Initialization is run once (sync.Once). A missing or unreadable file
// fails Init fast; the embedded default keeps the server runnable when no
// file is configured.

package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/target/go-server/assets"
)

// headerLines is the number of leading header lines in a word list.
const headerLines = 3

var (
	initOnce   sync.Once
	dict       []string            // candidates in list order
	dictSet    map[string]struct{} // same words, for membership checks
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resulting candidate list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_DICT_FILE"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				initialErr = err
				return
			}
			defer f.Close()
			list, initialErr = ReadCandidates(f)
		} else {
			list, initialErr = ReadCandidates(strings.NewReader(assets.Dictionary()))
		}
		if initialErr != nil {
			return
		}

		dict = list
		dictSet = toSet(list)
		if len(dict) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// ReadCandidates parses a word list: skips the three header lines, then
// keeps trimmed, lowercased, all-alphabetic words of length >= 4 in order.
func ReadCandidates(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) >= 4 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// All returns the candidate words in list order.
func All() []string {
	return dict
}

// Contains reports whether w is a dictionary candidate.
func Contains(w string) bool {
	_, ok := dictSet[strings.ToLower(w)]
	return ok
}

// Stats returns the number of loaded candidates.
func Stats() int {
	return len(dict)
}
