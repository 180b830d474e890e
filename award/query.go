package award

import (
	"regexp"
	"strings"
)

// tagRE recognizes the explicit award constraint syntax: a case-insensitive
// "tag" keyword followed by a quoted award name.
var tagRE = regexp.MustCompile(`(?i)tag\s*["']([^"']+)["']`)

// Shortcut maps a fixed phrase anywhere in the query to a canonical award.
type Shortcut struct {
	Phrase string
	Award  string
}

// Shortcuts are tried in order after the tag syntax fails.
var Shortcuts = []Shortcut{
	{Phrase: "most innovative", Award: "most innovative project"},
	{Phrase: "best overall", Award: "best overall project"},
}

// ParseQuery extracts an award constraint from free-form user input.
// It returns the normalized target award and whether one was found.
func ParseQuery(input string) (string, bool) {
	if m := tagRE.FindStringSubmatch(input); m != nil {
		return NormalizeQuery(m[1]), true
	}

	lower := strings.ToLower(input)
	for _, shortcut := range Shortcuts {
		if strings.Contains(lower, shortcut.Phrase) {
			return shortcut.Award, true
		}
	}

	return "", false
}
