package convert

import (
	"errors"
	"slices"

	"naming-clt/naming"
	"naming-clt/utils"
)

// Single-character option tags shared by the filter and output option lists.
const (
	TagScreamingSnake = "S"
	TagSnake          = "s"
	TagKebab          = "k"
	TagCamel          = "c"
	TagHungarian      = "h"
	TagPascal         = "p"
)

// ErrConflictingOptions is returned by NewFilter when both hungarian notation
// and camel case are requested: they are two readings of the same shape and
// cannot be applied at once.
var ErrConflictingOptions = errors.New(
	`in option "--filter", at most one of the two, hungarian notation (h) and camel case (c) can appear`)

// predicates pairs every filter tag with its shape predicate, in the same
// order the styles classify. Tag h reuses the camel predicate.
var predicates = [...]struct {
	tag   string
	match func(string) bool
}{
	{TagScreamingSnake, naming.IsScreamingSnake},
	{TagSnake, naming.IsSnake},
	{TagKebab, naming.IsKebab},
	{TagCamel, naming.IsCamel},
	{TagHungarian, naming.IsCamel},
	{TagPascal, naming.IsPascal},
}

// Filter answers the caller's filter option list: it drops captured words
// whose shape was not asked for and classifies the survivors.
type Filter struct {
	options []string
}

// NewFilter validates the option tag list and builds a Filter. Duplicate tags
// and the empty list are fine; combining h and c is not.
func NewFilter(options []string) (*Filter, error) {
	if slices.Contains(options, TagHungarian) && slices.Contains(options, TagCamel) {
		return nil, ErrConflictingOptions
	}

	return &Filter{options: slices.Clone(options)}, nil
}

// FilterWords keeps the words matching at least one of the selected shape
// predicates, preserving input order. An empty option list selects no
// predicate, so nothing passes.
func (f *Filter) FilterWords(words []string) []string {
	selected := make([]func(string) bool, 0, len(predicates))
	for _, p := range predicates {
		if slices.Contains(f.options, p.tag) {
			selected = append(selected, p.match)
		}
	}

	kept := make([]string, 0, len(words))
	for _, word := range words {
		if utils.AnyOf(word, selected...) {
			kept = append(kept, word)
		}
	}

	return kept
}

// ToCases filters words and classifies every survivor. When tag h was
// requested, camel-shaped words are reinterpreted as Hungarian notation
// instead of being classified directly.
func (f *Filter) ToCases(words []string) []naming.Case {
	words = f.FilterWords(words)

	hungarian := slices.Contains(f.options, TagHungarian)

	return utils.MapSlice(words, func(word string) naming.Case {
		if hungarian && naming.IsCamel(word) {
			return naming.FromHungarianNotation(word)
		}

		return naming.WhichCase(word)
	})
}
