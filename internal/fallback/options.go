// Package fallback merges resolved content with static defaults so every
// page can render, even before the content store is populated.
package fallback

// First returns the first non-zero candidate, or the zero value.
func First[T comparable](candidates ...T) T {
	var zero T
	for _, c := range candidates {
		if c != zero {
			return c
		}
	}
	return zero
}

// Or returns v unless it is the zero value.
func Or[T comparable](v, def T) T {
	return First(v, def)
}

func FirstString(candidates ...string) string {
	return First(candidates...)
}

func FirstInt(candidates ...int) int {
	return First(candidates...)
}

// FirstSlice returns the first non-empty slice.
func FirstSlice(candidates ...[]string) []string {
	for _, c := range candidates {
		if len(c) > 0 {
			return c
		}
	}
	return nil
}
