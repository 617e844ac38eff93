package utils

// AnyOf reports whether value satisfies at least one of the predicates.
// No predicates means nothing to satisfy: the result is false.
func AnyOf[T any](value T, predicates ...func(T) bool) bool {
	for _, match := range predicates {
		if match(value) {
			return true
		}
	}

	return false
}

// MapSlice applies fn to every element of s and returns the results in order.
func MapSlice[S ~[]E, E any, R any](s S, fn func(E) R) []R {
	out := make([]R, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}

	return out
}
