package grid

import (
	"math/rand"
	"testing"
)

func TestParse(t *testing.T) {
	g, err := Parse("testmings")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Letters() != "testmings" {
		t.Fatalf("letters = %q", g.Letters())
	}
	if g.Middle() != 'm' {
		t.Fatalf("middle = %q, want m", g.Middle())
	}
	if g.String() != "tes tmi ngs" {
		t.Fatalf("string = %q", g.String())
	}
}

func TestParseIgnoresWhitespaceAndCase(t *testing.T) {
	g, err := Parse("TES tmi\nngs")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Letters() != "testmings" {
		t.Fatalf("letters = %q", g.Letters())
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "abc", "abcdefghij", "abcd3fghi", "abc-efghi"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestLetterCounts(t *testing.T) {
	g, _ := Parse("testmings")
	c := g.LetterCounts()
	if c.Total() != Size {
		t.Fatalf("total = %d, want %d", c.Total(), Size)
	}
	want := map[byte]int{'t': 2, 'e': 1, 's': 2, 'm': 1, 'i': 1, 'n': 1, 'g': 1}
	for b, n := range want {
		if c.Of(b) != n {
			t.Fatalf("count of %q = %d, want %d", b, c.Of(b), n)
		}
	}
	if c.Has('z') {
		t.Fatal("z should not be present")
	}
	if c.Of('3') != 0 || c.Has('3') {
		t.Fatal("non-letter byte should report zero")
	}
	if c.Distinct() != "egimnst" {
		t.Fatalf("distinct = %q", c.Distinct())
	}
}

func TestNewRandomDeterministicWithSeed(t *testing.T) {
	a := NewRandom(rand.New(rand.NewSource(42)))
	b := NewRandom(rand.New(rand.NewSource(42)))
	if a != b {
		t.Fatalf("same seed produced different grids: %v vs %v", a, b)
	}
	c := a.LetterCounts()
	if c.Total() != Size {
		t.Fatalf("total = %d", c.Total())
	}
	for _, l := range a {
		if l < 'a' || l > 'z' {
			t.Fatalf("letter out of range: %q", l)
		}
	}
}
