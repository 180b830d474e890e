package award

import (
	"maps"
	"regexp"
	"slices"
)

// Cue-phrase patterns applied to free-text descriptions, in order. Each
// captures a 5-40 character run of letters, spaces and hyphens terminated
// at end-of-string, newline, '.', ',' or ';'. Captures still have to pass
// normalization and the vocabulary gate, so the patterns themselves can stay
// permissive.
var cuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)award[:\-]?\s*([a-z\s-]{5,40}?)\s*(?:[\n.,;]|$)`),
	regexp.MustCompile(`(?i)winner of\s+([a-z\s-]{5,40}?)\s*(?:[\n.,;]|$)`),
	regexp.MustCompile(`(?i)received\s+([a-z\s-]{5,40}?)\s*(?:[\n.,;]|$)`),
	regexp.MustCompile(`(?i)won\s+([a-z\s-]{5,40}?)\s*(?:[\n.,;]|$)`),
	regexp.MustCompile(`(?i)(?:best|most|top|outstanding|innovative|promising)\s+([a-z\s-]{5,40}?)\s*(?:[\n.,;]|$)`),
}

// Extract returns the deduplicated, sorted set of canonical award names
// found in a publication's free-text description and its structured tag
// list. Malformed or empty input yields an empty set; Extract never fails.
func Extract(description string, rawAwards []string) []string {
	found := make(map[string]struct{})

	for _, tag := range rawAwards {
		if name := Normalize(tag); InVocabulary(name) {
			found[name] = struct{}{}
		}
	}

	if description != "" {
		for _, pattern := range cuePatterns {
			for _, match := range pattern.FindAllStringSubmatch(description, -1) {
				if name := Normalize(match[1]); InVocabulary(name) {
					found[name] = struct{}{}
				}
			}
		}
	}

	return slices.Sorted(maps.Keys(found))
}
