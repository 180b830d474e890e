package award

import "strings"

// VocabularyVersion identifies the canonical vocabulary revision. Bump it
// whenever entries are added or removed so rebuilt indexes can be told apart
// from stale ones.
const VocabularyVersion = 1

// Vocabulary is the closed set of recognized award names. Extracted phrases
// are accepted only when they relate to an entry by substring containment.
// Treated as configuration data: extraction logic never special-cases
// individual entries.
var Vocabulary = []string{
	"best overall project",
	"most innovative project",
	"most promising innovation",
	"best technical implementation",
	"best rag implementation",
	"best use of llms",
	"distinguished technical deep-dive",
	"the imagenet competition in 2012",
	"innovative approach",
	"outstanding contribution",
}

// InVocabulary reports whether name relates to a canonical award by
// substring containment in either direction. name is expected to be
// normalized already.
func InVocabulary(name string) bool {
	if name == "" {
		return false
	}
	for _, entry := range Vocabulary {
		if strings.Contains(entry, name) || strings.Contains(name, entry) {
			return true
		}
	}
	return false
}
