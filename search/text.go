package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/laureate/core"
)

// FormatContext renders hits into the labeled context block handed to the
// answer generator. One section per hit, blank-line separated. The labels
// are part of the prompt contract; the generator is told to cite titles
// and awards from them.
func FormatContext(hits []*core.Hit) string {
	sections := make([]string, 0, len(hits))
	for _, hit := range hits {
		sections = append(sections, fmt.Sprintf(
			"Title: %s\nID: %s\nAwards: %s\nContent: %s",
			hit.Chunk.Title,
			hit.Chunk.PublicationID,
			hit.Chunk.Awards,
			hit.Chunk.Text,
		))
	}
	return strings.Join(sections, "\n\n")
}
