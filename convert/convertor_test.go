package convert_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naming-clt/convert"
	"naming-clt/naming"
)

func classifyAll(t *testing.T, words ...string) []naming.Case {
	t.Helper()

	cases := make([]naming.Case, 0, len(words))
	for _, word := range words {
		c := naming.WhichCase(word)
		require.NotZero(t, c.Style, "word %q matched no shape", word)
		cases = append(cases, c)
	}

	return cases
}

func TestToLines(t *testing.T) {
	options := []string{"S", "s", "k", "c", "p"}
	cases := classifyAll(t, "SCREAMING_SNAKE", "snake_case", "kebab-case", "camelCase", "PascalCase")

	got := convert.NewConvertor(options, cases).ToLines()

	want := "SCREAMING_SNAKE SCREAMING_SNAKE screaming_snake screaming-snake screamingSnake ScreamingSnake\n" +
		"snake_case SNAKE_CASE snake_case snake-case snakeCase SnakeCase\n" +
		"kebab-case KEBAB_CASE kebab_case kebab-case kebabCase KebabCase\n" +
		"camelCase CAMEL_CASE camel_case camel-case camelCase CamelCase\n" +
		"PascalCase PASCAL_CASE pascal_case pascal-case pascalCase PascalCase"

	assert.Equal(t, want, got)
}

// Output columns mirror the caller's option order, not the table order.
func TestToLinesFollowsOptionOrder(t *testing.T) {
	options := []string{"p", "c", "s", "k", "S"}
	cases := classifyAll(t, "a_a")

	got := convert.NewConvertor(options, cases).ToLines()
	assert.Equal(t, "a_a AA aA a_a a-a A_A", got)
}

func TestToLinesRepeatedOption(t *testing.T) {
	options := []string{"s", "s"}
	cases := classifyAll(t, "a_a")

	got := convert.NewConvertor(options, cases).ToLines()
	assert.Equal(t, "a_a a_a a_a", got)
}

func TestToJSON(t *testing.T) {
	options := []string{"S", "s", "k", "c", "p"}
	cases := classifyAll(t, "snake_case", "kebab-case")

	got := convert.NewConvertor(options, cases).ToJSON()

	want := `{"result":[` +
		`{"origin":"snake_case","screaming_snake":"SNAKE_CASE","snake":"snake_case",` +
		`"kebab":"snake-case","camel":"snakeCase","pascal":"SnakeCase"},` +
		`{"origin":"kebab-case","screaming_snake":"KEBAB_CASE","snake":"kebab_case",` +
		`"kebab":"kebab-case","camel":"kebabCase","pascal":"KebabCase"}]}`

	assert.Equal(t, want, got)
}

func TestToRegex(t *testing.T) {
	options := []string{"S", "s", "k", "c", "p"}
	cases := classifyAll(t, "SCREAMING_SNAKE", "snake_case")

	got := convert.NewConvertor(options, cases).ToRegex()

	want := "SCREAMING_SNAKE SCREAMING_SNAKE|screaming_snake|screaming-snake|screamingSnake|ScreamingSnake\n" +
		"snake_case SNAKE_CASE|snake_case|snake-case|snakeCase|SnakeCase"

	assert.Equal(t, want, got)
}

func TestToRegexJSON(t *testing.T) {
	options := []string{"S", "s", "k", "c", "p"}
	cases := classifyAll(t, "SCREAMING_SNAKE", "snake_case")

	got := convert.NewConvertor(options, cases).ToRegexJSON()

	want := `{"result":[{"origin":"SCREAMING_SNAKE",` +
		`"regex":"SCREAMING_SNAKE|screaming_snake|screaming-snake|screamingSnake|ScreamingSnake"},` +
		`{"origin":"snake_case",` +
		`"regex":"SNAKE_CASE|snake_case|snake-case|snakeCase|SnakeCase"}]}`

	assert.Equal(t, want, got)
}

func TestConvertorEmptyInputs(t *testing.T) {
	c := convert.NewConvertor([]string{"s"}, nil)
	assert.Equal(t, "", c.ToLines())
	assert.Equal(t, "", c.ToRegex())
	assert.Equal(t, `{"result":[]}`, c.ToJSON())
	assert.Equal(t, `{"result":[]}`, c.ToRegexJSON())
}

// Empty output options still yield a well-formed result.
func TestConvertorEmptyOptions(t *testing.T) {
	cases := classifyAll(t, "a_a")

	c := convert.NewConvertor(nil, cases)
	assert.Equal(t, "a_a", c.ToLines())
	assert.Equal(t, `{"result":[{"origin":"a_a"}]}`, c.ToJSON())
}

// The projections share no mutable state; re-invocation is byte-identical.
func TestConvertorIdempotent(t *testing.T) {
	c := convert.NewConvertor([]string{"p", "k"}, classifyAll(t, "a_a", "b_b"))

	assert.Equal(t, c.ToLines(), c.ToLines())
	assert.Equal(t, c.ToJSON(), c.ToJSON())
	assert.Equal(t, c.ToRegex(), c.ToRegex())
	assert.Equal(t, c.ToRegexJSON(), c.ToRegexJSON())
}

func ExampleConvertor() {
	filter, _ := convert.NewFilter([]string{"s", "k"})
	cases := filter.ToCases([]string{"snake_case", "kebab-case", "camelCase"})

	fmt.Println(convert.NewConvertor([]string{"c", "p"}, cases).ToLines())

	// Output:
	// snake_case snakeCase SnakeCase
	// kebab-case kebabCase KebabCase
}
