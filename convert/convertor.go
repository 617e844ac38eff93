package convert

import (
	"encoding/json"
	"slices"
	"strings"

	"naming-clt/naming"
	"naming-clt/utils"
)

type renderFunc func(naming.Case) string

// directMappers renders the bare converted value for each output tag.
var directMappers = map[string]renderFunc{
	TagScreamingSnake: naming.Case.ToScreamingSnake,
	TagSnake:          naming.Case.ToSnake,
	TagKebab:          naming.Case.ToKebab,
	TagCamel:          naming.Case.ToCamel,
	TagPascal:         naming.Case.ToPascal,
}

// jsonMappers renders a `"field":"value"` fragment for each output tag, with
// the style's long name as the field.
var jsonMappers = map[string]renderFunc{
	TagScreamingSnake: jsonField(naming.StyleScreamingSnake.LongName(), naming.Case.ToScreamingSnake),
	TagSnake:          jsonField(naming.StyleSnake.LongName(), naming.Case.ToSnake),
	TagKebab:          jsonField(naming.StyleKebab.LongName(), naming.Case.ToKebab),
	TagCamel:          jsonField(naming.StyleCamel.LongName(), naming.Case.ToCamel),
	TagPascal:         jsonField(naming.StylePascal.LongName(), naming.Case.ToPascal),
}

func jsonField(name string, render renderFunc) renderFunc {
	return func(c naming.Case) string {
		return quoteJSON(name) + ":" + quoteJSON(render(c))
	}
}

// quoteJSON returns the JSON string literal for s.
func quoteJSON(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// marshaling a plain string cannot fail
		panic(err)
	}

	return string(data)
}

// Convertor projects classified cases through the output option tags into one
// of four serializations. All methods are pure projections: calling one twice
// yields byte-identical results.
type Convertor struct {
	options []string
	cases   []naming.Case
}

// NewConvertor builds a Convertor rendering cases under the given output tag
// order. The order is kept exactly as given, repeats included.
func NewConvertor(options []string, cases []naming.Case) *Convertor {
	return &Convertor{options: slices.Clone(options), cases: cases}
}

// selectMappers picks rendering functions from a table, mirroring the
// caller's option order. Tags without a renderer (h is never a render target)
// are skipped.
func (c *Convertor) selectMappers(table map[string]renderFunc) []renderFunc {
	mappers := make([]renderFunc, 0, len(c.options))
	for _, tag := range c.options {
		if render, ok := table[tag]; ok {
			mappers = append(mappers, render)
		}
	}

	return mappers
}

// ToLines renders one line per case: the original spelling first, then every
// target rendering space-joined in option order. Lines are newline-joined
// with no trailing newline.
func (c *Convertor) ToLines() string {
	return c.lines(directMappers, " ")
}

// ToRegex renders one line per case: the original spelling, then the target
// renderings joined into a single "|" alternation.
func (c *Convertor) ToRegex() string {
	return c.lines(directMappers, "|")
}

func (c *Convertor) lines(table map[string]renderFunc, sep string) string {
	mappers := c.selectMappers(table)

	lines := utils.MapSlice(c.cases, func(cs naming.Case) string {
		line := cs.Origin
		if values := renderAll(mappers, cs); len(values) > 0 {
			line += " " + strings.Join(values, sep)
		}

		return line
	})

	return strings.Join(lines, "\n")
}

// ToJSON renders {"result":[{"origin":...,<field>,...},...]} with the
// converted fields in option order.
func (c *Convertor) ToJSON() string {
	mappers := c.selectMappers(jsonMappers)

	var b strings.Builder
	b.WriteString(`{"result":[`)

	for i, cs := range c.cases {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(`{"origin":`)
		b.WriteString(quoteJSON(cs.Origin))
		for _, fragment := range renderAll(mappers, cs) {
			b.WriteByte(',')
			b.WriteString(fragment)
		}
		b.WriteByte('}')
	}

	b.WriteString(`]}`)

	return b.String()
}

// ToRegexJSON renders {"result":[{"origin":...,"regex":"a|b|..."},...]} with
// the alternation built from the direct renderings in option order.
func (c *Convertor) ToRegexJSON() string {
	mappers := c.selectMappers(directMappers)

	var b strings.Builder
	b.WriteString(`{"result":[`)

	for i, cs := range c.cases {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(`{"origin":`)
		b.WriteString(quoteJSON(cs.Origin))
		b.WriteString(`,"regex":`)
		b.WriteString(quoteJSON(strings.Join(renderAll(mappers, cs), "|")))
		b.WriteByte('}')
	}

	b.WriteString(`]}`)

	return b.String()
}

func renderAll(mappers []renderFunc, c naming.Case) []string {
	return utils.MapSlice(mappers, func(render renderFunc) string {
		return render(c)
	})
}
