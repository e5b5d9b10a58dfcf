package assets

import (
	_ "embed"
)

// Default word list, carried so the binaries run without any
// configuration. Same format as external lists: three header lines,
// then one word per line.
//
//go:embed dictionary.txt
var dictionary string

// Dictionary returns the embedded default word list, header included.
func Dictionary() string {
	return dictionary
}
