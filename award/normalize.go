package award

import (
	"regexp"
	"strings"
)

// Validation limits for a normalized award name.
const (
	minLength = 5
	maxTokens = 5
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	quotesRE     = regexp.MustCompile("['`]+")
	digitRE      = regexp.MustCompile(`\d`)

	// Filler connectives removed as standalone tokens before validation.
	fillerRE = regexp.MustCompile(`\b(at the|for|in|with)\b`)

	// Terms that mark a phrase as prose rather than an award name.
	stopTermRE = regexp.MustCompile(`\b(it|this|because|from|classification|usecases|trending|topics|way)\b`)
)

// Normalize canonicalizes an award name candidate. It lowercases, collapses
// whitespace runs, strips apostrophes and backticks, removes filler
// connectives and trims. Candidates that are too short, too long, contain a
// digit or contain a stop-term are rejected with "".
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRE.ReplaceAllString(s, " ")
	s = quotesRE.ReplaceAllString(s, "")
	s = fillerRE.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))

	if len(s) < minLength ||
		digitRE.MatchString(s) ||
		stopTermRE.MatchString(s) ||
		len(strings.Fields(s)) > maxTokens {
		return ""
	}

	return s
}

// NormalizeQuery canonicalizes a user-supplied award phrase for retrieval
// and matching. Unlike Normalize it never rejects: a phrase that fails
// validation falls back to its lowercased, whitespace-collapsed form so a
// query like tag "ai" still filters literally.
func NormalizeQuery(s string) string {
	if n := Normalize(s); n != "" {
		return n
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
