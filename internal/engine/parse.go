package engine

import "strings"

// ParseStat parses a stat code case-insensitively.
// Empty or unrecognized input reports ok=false and is treated as absent by callers.
func ParseStat(input string) (Stat, bool) {
	s := Stat(strings.ToUpper(strings.TrimSpace(input)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

// ParseStatPtr is ParseStat for optional event fields.
func ParseStatPtr(input string) *Stat {
	s, ok := ParseStat(input)
	if !ok {
		return nil
	}
	return &s
}
