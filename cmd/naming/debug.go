package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"

	"naming-clt/naming"
)

// debugDump prints the captured words and their classified cases to stderr,
// keeping stdout clean for the serialized result.
func debugDump(words []string, cases []naming.Case) {
	spew.Fdump(os.Stderr, words, cases)
}
