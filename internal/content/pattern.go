package content

import "strings"

// TitlePattern turns a slug into the title search pattern: lowercase,
// every "-" replaced by "*", wrapped in "*".
func TitlePattern(slug string) string {
	return "*" + strings.ReplaceAll(strings.ToLower(slug), "-", "*") + "*"
}

// MatchPattern reports whether s matches the glob pattern, ignoring case.
// "*" matches any run of characters, including none; every other
// character matches itself.
func MatchPattern(pattern, s string) bool {
	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(s))

	pi, ti := 0, 0
	star, mark := -1, 0
	for ti < len(t) {
		switch {
		case pi < len(p) && p[pi] == '*':
			star, mark = pi, ti
			pi++
		case pi < len(p) && p[pi] == t[ti]:
			pi++
			ti++
		case star >= 0:
			pi = star + 1
			mark++
			ti = mark
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
