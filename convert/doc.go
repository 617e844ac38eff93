// Package convert narrows captured words to the naming cases a caller asked
// for and serializes the classified results.
//
// The caller talks in single-character option tags: S (screaming snake),
// s (snake), k (kebab), c (camel), h (hungarian) and p (pascal). Filter
// validates and applies the input-side tags; Convertor projects classified
// cases through the output-side tags, in exactly the order they were given,
// into one of four serializations (plain lines, JSON, alternation regex,
// regex JSON).
//
// Tag h is special twice over: it shares the camel shape predicate on the
// input side but reinterprets matching words as Hungarian notation, and it is
// never a render target on the output side.
package convert
