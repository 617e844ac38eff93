package naming

// The predicates work on the ASCII identifier alphabet. Anything outside it
// (including the empty string) simply fails the shape check; predicates never
// panic and never error.

// IsScreamingSnake reports whether word consists of uppercase letters, digits
// and underscores, with at least one letter.
func IsScreamingSnake(word string) bool {
	hasLetter := false

	for _, r := range word {
		switch {
		case isUpper(r):
			hasLetter = true
		case isDigit(r) || r == '_':
		default:
			return false
		}
	}

	return hasLetter
}

// IsSnake reports whether word consists of lowercase letters, digits and
// underscores.
func IsSnake(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !isLower(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

// IsKebab reports whether word consists of lowercase letters, digits and
// hyphens.
func IsKebab(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !isLower(r) && !isDigit(r) && r != '-' {
			return false
		}
	}

	return true
}

// IsCamel reports whether word starts with a lowercase letter followed by
// letters and digits only. A plain lowercase word is camel-shaped too; the
// classification precedence in WhichCase resolves that overlap.
func IsCamel(word string) bool {
	if word == "" || !isLower(rune(word[0])) {
		return false
	}

	return restIsAlphanumeric(word)
}

// IsPascal reports whether word starts with an uppercase letter followed by
// letters and digits only.
func IsPascal(word string) bool {
	if word == "" || !isUpper(rune(word[0])) {
		return false
	}

	return restIsAlphanumeric(word)
}

func restIsAlphanumeric(word string) bool {
	for _, r := range word[1:] {
		if !isLower(r) && !isUpper(r) && !isDigit(r) {
			return false
		}
	}

	return true
}

func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }
