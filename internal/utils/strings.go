package utils

import "strings"

// SplitList splits a comma-separated setting into trimmed, non-empty values.
// Returns nil when nothing remains.
func SplitList(s string) []string {
	var result []string
	for _, v := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// NormalizeCode canonicalizes tickers and ISO codes read from user input
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
