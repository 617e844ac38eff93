// Package options models the CLI option surface of the naming tool and its
// optional YAML defaults file.
package options

import (
	"fmt"
	"strings"

	"naming-clt/convert"
)

// DefaultTags is the tag list used for filter and output options when neither
// a flag nor a defaults file supplies one: every renderable style, without the
// Hungarian reinterpretation.
func DefaultTags() []string {
	return []string{
		convert.TagScreamingSnake,
		convert.TagSnake,
		convert.TagKebab,
		convert.TagCamel,
		convert.TagPascal,
	}
}

// validTags is the closed tag set accepted on the command line.
var validTags = map[string]struct{}{
	convert.TagScreamingSnake: {},
	convert.TagSnake:          {},
	convert.TagKebab:          {},
	convert.TagCamel:          {},
	convert.TagHungarian:      {},
	convert.TagPascal:         {},
}

// Set holds the resolved options of one invocation.
type Set struct {
	Filter   []string // filter option tags, in flag order
	Output   []string // output option tags, in flag order
	Locators []string // literal locator strings for the captor
	Files    []string // input files; empty means stdin
	EOF      string   // stop reading input at a line equal to this marker
	JSON     bool
	Regex    bool
	Debug    bool
}

// ParseTags splits a tag flag value into single-character tags. Both comma
// separated ("S,s,k") and contiguous ("Ssk") spellings are accepted; unknown
// characters are kept so Validate can report them.
func ParseTags(value string) []string {
	var tags []string
	for _, chunk := range strings.Split(value, ",") {
		for _, r := range chunk {
			tags = append(tags, string(r))
		}
	}

	return tags
}

// Validate checks both tag lists against the closed tag set and rejects h as
// an output tag. The h/c filter conflict is left to convert.NewFilter, which
// owns that rule.
func (s *Set) Validate() error {
	for _, tag := range s.Filter {
		if _, ok := validTags[tag]; !ok {
			return fmt.Errorf(`in option "--filter", unknown naming case tag %q`, tag)
		}
	}

	for _, tag := range s.Output {
		if _, ok := validTags[tag]; !ok {
			return fmt.Errorf(`in option "--output", unknown naming case tag %q`, tag)
		}
		if tag == convert.TagHungarian {
			return fmt.Errorf(`in option "--output", hungarian notation (h) is not a render target`)
		}
	}

	return nil
}

// ApplyConfig fills tag lists that no flag supplied from the defaults file.
func (s *Set) ApplyConfig(cfg *Config) {
	if len(s.Filter) == 0 {
		s.Filter = append(s.Filter, cfg.Filter...)
	}
	if len(s.Output) == 0 {
		s.Output = append(s.Output, cfg.Output...)
	}
}
