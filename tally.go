package laureate

import (
	"context"
	"sort"

	"github.com/poiesic/laureate/award"
	"github.com/poiesic/laureate/core"
)

// TallyEntry reports how many unique publications hold one award.
type TallyEntry struct {
	Award          string
	PublicationIDs []core.ID
}

// Count returns the number of unique publications holding the award.
func (e *TallyEntry) Count() int {
	return len(e.PublicationIDs)
}

// AwardTally re-extracts awards from every stored publication and reports,
// per award, the unique publications that hold it. Entries are sorted by
// award name; publication IDs within an entry are sorted too.
func (a *Assistant) AwardTally(ctx context.Context) ([]TallyEntry, error) {
	publications, err := a.repository.ListPublications(ctx)
	if err != nil {
		return nil, err
	}

	byAward := make(map[string]map[core.ID]struct{})
	for _, publication := range publications {
		for _, name := range award.Extract(publication.Description, publication.RawAwards) {
			if byAward[name] == nil {
				byAward[name] = make(map[core.ID]struct{})
			}
			byAward[name][publication.ID] = struct{}{}
		}
	}

	entries := make([]TallyEntry, 0, len(byAward))
	for name, ids := range byAward {
		entry := TallyEntry{Award: name, PublicationIDs: make([]core.ID, 0, len(ids))}
		for id := range ids {
			entry.PublicationIDs = append(entry.PublicationIDs, id)
		}
		sort.Slice(entry.PublicationIDs, func(i, j int) bool {
			return entry.PublicationIDs[i] < entry.PublicationIDs[j]
		})
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Award < entries[j].Award
	})
	return entries, nil
}
