package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// MonthKey truncates an ISO date string ("2006-01-02...") to its "2006-01" month key.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
