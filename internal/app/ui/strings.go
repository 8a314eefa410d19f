package ui

import "strings"

func upper(s string) string {
	return strings.ToUpper(s)
}

// expandTabs keeps code indentation visible without relying on terminal tab stops.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "  ")
}
