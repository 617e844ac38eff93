// Package naming classifies identifier words into naming-case styles and
// re-renders them into other styles.
//
// The style set is closed: SCREAMING_SNAKE, snake_case, kebab-case, camelCase
// and PascalCase. A word is classified by running the shape predicates in
// declaration order and taking the first match, so a plain lowercase word
// (which is snake-, kebab- and camel-shaped at once) always classifies as
// snake. That precedence is load-bearing for callers and must not change.
//
// Hungarian notation is not a sixth style. A camel-shaped word such as
// "intPageSize" can be reinterpreted through FromHungarianNotation, which
// drops the leading type prefix and yields a Pascal case for the remainder.
package naming
