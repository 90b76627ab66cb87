package util

import "strings"

// CleanText collapses whitespace runs and strips non-breaking spaces,
// which scraped markup is full of.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
