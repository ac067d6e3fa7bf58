package actions

import "strings"

const (
	defaultPlayerName = "Player"
	maxNameLength     = 24
)

// sanitizeName trims and caps a display name, substituting a default when
// nothing is left. Applied server-side regardless of client input.
func sanitizeName(name string) string {
	name = truncate(strings.TrimSpace(name), maxNameLength)
	if name == "" {
		return defaultPlayerName
	}
	return name
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
