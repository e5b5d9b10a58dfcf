package game

import (
	"bytes"
	"strings"
	"testing"
)

var testDict = []string{"stem", "mists", "tests", "settings"}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(mustGrid(t, "testmings"), testDict)
}

func TestNewSolvesUpFront(t *testing.T) {
	g := newTestGame(t)
	if g.ID == "" {
		t.Fatal("expected game to have an ID")
	}
	if len(g.Possible) != 2 || g.Possible[0] != "stem" || g.Possible[1] != "mists" {
		t.Fatalf("possible = %v", g.Possible)
	}
}

func TestApplyGuessClassification(t *testing.T) {
	g := newTestGame(t)

	cases := []struct {
		guess string
		want  GuessResult
	}{
		{"stem", GuessCorrect},
		{"stem", GuessDuplicate},
		{"  STEM ", GuessDuplicate}, // normalized before classification
		{"ming", GuessUnknown},      // rule-valid, not in dictionary
		{"ming", GuessDuplicate},
		{"xyz", GuessInvalid},
		{"tests", GuessInvalid}, // no middle letter
		{"mists", GuessCorrect},
	}
	for _, c := range cases {
		got, err := g.ApplyGuess(c.guess)
		if err != nil {
			t.Fatalf("ApplyGuess(%q): %v", c.guess, err)
		}
		if got != c.want {
			t.Fatalf("ApplyGuess(%q) = %q, want %q", c.guess, got, c.want)
		}
	}
	if g.Invalid != 2 {
		t.Fatalf("invalid count = %d, want 2", g.Invalid)
	}
}

func TestApplyGuessAfterFinish(t *testing.T) {
	g := newTestGame(t)
	g.Finish()
	if _, err := g.ApplyGuess("stem"); err != ErrFinished {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestReport(t *testing.T) {
	g := newTestGame(t)
	for _, w := range []string{"stem", "ming", "xyz"} {
		if _, err := g.ApplyGuess(w); err != nil {
			t.Fatalf("ApplyGuess(%q): %v", w, err)
		}
	}
	rep := g.Finish()

	if rep.Correct != 1 {
		t.Fatalf("correct = %d, want 1", rep.Correct)
	}
	if len(rep.Missed) != 1 || rep.Missed[0] != "mists" {
		t.Fatalf("missed = %v, want [mists]", rep.Missed)
	}
	if len(rep.Unknown) != 1 || rep.Unknown[0] != "ming" {
		t.Fatalf("unknown = %v, want [ming]", rep.Unknown)
	}
	if !g.Finished {
		t.Fatal("game should be finished")
	}
}

func TestWriteReport(t *testing.T) {
	g := newTestGame(t)
	_, _ = g.ApplyGuess("stem")
	_, _ = g.ApplyGuess("ming")
	rep := g.Finish()

	var buf bytes.Buffer
	if err := WriteReport(&buf, rep); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Results\n-------\n",
		"Grid: tes tmi ngs (middle letter: m)",
		"Correct words: 1",
		"Possible words:\n  stem\n  mists",
		"Forgotten words:\n  mists",
		"Unknown user words:\n  ming",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q in:\n%s", want, out)
		}
	}
}
