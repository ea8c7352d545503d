package knowledge

import "strings"

// Normalize produces the comparison key for duplicate detection:
// lowercased, with runs of whitespace collapsed to single spaces.
// Two texts with the same key are the same unit.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
