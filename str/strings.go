package str

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from s.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Sanitize trims whitespace and removes control characters from s.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Unquote removes a single pair of matching surrounding quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ToSnakeCase converts a CamelCase string to snake_case.
func ToSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToCamelCase converts a snake_case string to CamelCase.
func ToCamelCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// DistinctChars returns the number of distinct characters in s.
// Used by the seq package to resolve SequenceLength increments.
func DistinctChars(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// FirstChar returns the first character of s, or 0 if s is empty.
func FirstChar(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// LastChar returns the last character of s, or 0 if s is empty.
func LastChar(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
