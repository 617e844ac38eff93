package naming

import "strings"

// Words decomposes the case into its lower-cased word list, splitting by the
// source style's own convention: snake and screaming-snake on underscores,
// kebab on hyphens, camel and pascal on uppercase boundaries. Empty segments
// from doubled separators are dropped.
func (c Case) Words() []string {
	switch c.Style {
	default:
		return nil
	case StyleScreamingSnake, StyleSnake:
		return splitSeparated(c.Origin, "_")
	case StyleKebab:
		return splitSeparated(c.Origin, "-")
	case StyleCamel, StylePascal:
		return splitHumps(c.Origin)
	}
}

// ToScreamingSnake renders the case as SCREAMING_SNAKE.
func (c Case) ToScreamingSnake() string {
	return strings.ToUpper(strings.Join(c.Words(), "_"))
}

// ToSnake renders the case as snake_case.
func (c Case) ToSnake() string {
	return strings.Join(c.Words(), "_")
}

// ToKebab renders the case as kebab-case.
func (c Case) ToKebab() string {
	return strings.Join(c.Words(), "-")
}

// ToCamel renders the case as camelCase.
func (c Case) ToCamel() string {
	words := c.Words()
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(words[0])
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}

	return b.String()
}

// ToPascal renders the case as PascalCase.
func (c Case) ToPascal() string {
	var b strings.Builder
	for _, word := range c.Words() {
		b.WriteString(capitalize(word))
	}

	return b.String()
}

func splitSeparated(word, sep string) []string {
	parts := strings.Split(word, sep)

	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			words = append(words, strings.ToLower(part))
		}
	}

	return words
}

// splitHumps splits a camel- or pascal-shaped word before every uppercase
// letter. Digits bind to the word they follow.
func splitHumps(word string) []string {
	var words []string

	start := 0
	for i, r := range word {
		if i > start && isUpper(r) {
			words = append(words, strings.ToLower(word[start:i]))
			start = i
		}
	}
	if start < len(word) {
		words = append(words, strings.ToLower(word[start:]))
	}

	return words
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}

	return strings.ToUpper(word[:1]) + word[1:]
}
