// Package captor extracts candidate identifier words from free input text.
//
// Capture is mechanical: a word is a maximal run of letters, digits,
// underscores and hyphens. Whether a captured word is a well-formed naming
// case is the downstream filter's concern, not the captor's.
package captor

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"naming-clt/utils"
)

const wordClass = `[A-Za-z0-9_-]+`

var wordPattern = regexp.MustCompile(wordClass)

// Captor captures words from text, either every word-shaped run or, when
// locators are set, only the word immediately following a locator occurrence.
type Captor struct {
	locators []string
	located  *regexp.Regexp
}

// NewCaptor builds a Captor. Locators are matched literally; an empty locator
// string is rejected since it would locate everywhere.
func NewCaptor(locators []string) (*Captor, error) {
	if slices.Contains(locators, "") {
		return nil, errors.New(`in option "--locator", locator strings cannot be empty`)
	}

	c := &Captor{locators: slices.Clone(locators)}
	if len(locators) > 0 {
		quoted := utils.MapSlice(locators, regexp.QuoteMeta)
		c.located = regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)(` + wordClass + `)`)
	}

	return c, nil
}

// CaptureWords extracts words from every text, keeping text order and
// duplicates.
func (c *Captor) CaptureWords(texts []string) []string {
	var words []string
	for _, text := range texts {
		if c.located == nil {
			words = append(words, wordPattern.FindAllString(text, -1)...)
			continue
		}

		for _, match := range c.located.FindAllStringSubmatch(text, -1) {
			words = append(words, match[1])
		}
	}

	return words
}
