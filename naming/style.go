package naming

//go:generate go tool stringer -type=StyleEnum -output=style_string.go

type StyleEnum int

const (
	_ StyleEnum = iota // skip zero value, use it as a default (invalid) value for StyleEnum

	StyleScreamingSnake
	StyleSnake
	StyleKebab
	StyleCamel
	StylePascal

	// StyleTotal is a constant that represents the total number of styles defined
	StyleTotal = int(iota)
)

// LongName returns the canonical long name of the style, as used for JSON
// field names. The invalid style yields an empty string.
func (s StyleEnum) LongName() string {
	switch s {
	default:
		return ""
	case StyleScreamingSnake:
		return "screaming_snake"
	case StyleSnake:
		return "snake"
	case StyleKebab:
		return "kebab"
	case StyleCamel:
		return "camel"
	case StylePascal:
		return "pascal"
	}
}
