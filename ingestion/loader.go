package ingestion

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/poiesic/laureate/core"
)

// rawRecord mirrors one entry of the source corpus file.
type rawRecord struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Username               string   `json:"username"`
	License                string   `json:"license"`
	PublicationDescription string   `json:"publication_description"`
	Awards                 []string `json:"awards"`
}

// missing values the corpus uses interchangeably with an absent field
var missingMarkers = map[string]struct{}{
	"":     {},
	"none": {},
	"null": {},
	"n/a":  {},
}

// cleanField trims a raw field and substitutes fallback when the value is
// one of the corpus's missing-value markers.
func cleanField(value, fallback string) string {
	value = strings.TrimSpace(value)
	if _, missing := missingMarkers[strings.ToLower(value)]; missing {
		return fallback
	}
	return value
}

// LoadCorpus reads a corpus file and returns its publications with missing
// fields coerced to defaults. Malformed individual records are defaulted,
// never dropped; a record without an id gets a content-derived one.
//
// A missing file surfaces as a pipeline error of kind KindCorpusMissing,
// malformed JSON as KindCorpusInvalid.
func LoadCorpus(path string) ([]*core.Publication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewPipelineError(core.KindCorpusMissing, "load corpus", err)
		}
		return nil, core.NewPipelineError(core.KindCorpusInvalid, "load corpus", err)
	}

	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, core.NewPipelineError(core.KindCorpusInvalid, "parse corpus", err)
	}

	publications := make([]*core.Publication, 0, len(records))
	for _, record := range records {
		description := strings.TrimSpace(record.PublicationDescription)

		publication := &core.Publication{
			ID:          core.ID(strings.TrimSpace(record.ID)),
			Title:       cleanField(record.Title, core.DefaultTitle),
			Author:      cleanField(record.Username, core.DefaultAuthor),
			License:     cleanField(record.License, core.DefaultLicense),
			Description: description,
			RawAwards:   record.Awards,
		}

		if publication.ID == "" {
			publication.ID = core.IDFromContent(publication.Title + "\n" + description)
		}

		publications = append(publications, publication)
	}

	return publications, nil
}
