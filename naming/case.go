package naming

// Case is a classified word: the style it matched plus the original spelling.
// The original string is carried as captured, not normalized.
type Case struct {
	Style  StyleEnum
	Origin string
}

// classifyOrder pairs every style with its predicate, in declaration order.
// A word matching several shapes (a plain lowercase word is snake-, kebab- and
// camel-shaped at once) classifies as the first match, so this order must stay
// exactly as is.
var classifyOrder = [...]struct {
	style StyleEnum
	match func(string) bool
}{
	{StyleScreamingSnake, IsScreamingSnake},
	{StyleSnake, IsSnake},
	{StyleKebab, IsKebab},
	{StyleCamel, IsCamel},
	{StylePascal, IsPascal},
}

// WhichCase classifies word into the first style whose predicate matches.
// It is meant for words that already passed at least one predicate; a word
// matching none yields the zero Case.
func WhichCase(word string) Case {
	for _, entry := range classifyOrder {
		if entry.match(word) {
			return Case{Style: entry.style, Origin: word}
		}
	}

	return Case{}
}

// FromHungarianNotation reinterprets a camel-shaped word as Hungarian
// notation: the leading run of lowercase letters is the type prefix and is
// dropped, the remainder is the Pascal-cased name ("intPageSize" yields a
// Pascal case holding "PageSize"). The returned Case carries the stripped
// string, not the original word.
func FromHungarianNotation(word string) Case {
	prefix := 0
	for prefix < len(word) && isLower(rune(word[prefix])) {
		prefix++
	}

	return Case{Style: StylePascal, Origin: word[prefix:]}
}
