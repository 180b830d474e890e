package core

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Default values substituted for missing or null publication fields.
const (
	DefaultTitle   = "Untitled Project"
	DefaultAuthor  = "anonymous"
	DefaultLicense = "unknown"
)

// NoAwards is the literal stored in chunk metadata when a publication
// carries no recognized awards.
const NoAwards = "none"

// AwardSeparator joins award names in chunk metadata.
const AwardSeparator = " | "

// ID is a unique identifier for domain entities.
// Publication IDs come from the source corpus; chunk IDs are derived
// from content hashing.
type ID string

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Publication represents a single project record from the source corpus.
// Awards is populated by the award extractor during ingestion; RawAwards
// holds the tag strings as they appeared in the source.
type Publication struct {
	ID          ID
	Title       string
	Author      string
	License     string
	Description string
	RawAwards   []string
	Awards      []string
}

// AwardsLabel returns the pipe-joined award list, or NoAwards when the
// publication has none. Award sets are frozen at index-build time.
func (p *Publication) AwardsLabel() string {
	if len(p.Awards) == 0 {
		return NoAwards
	}
	return strings.Join(p.Awards, AwardSeparator)
}

// Chunk is a bounded slice of a publication's composed text together with
// the metadata it inherits from its publication.
type Chunk struct {
	PublicationID ID
	Title         string
	Author        string
	License       string
	Awards        string // pipe-joined award names, or NoAwards
	Text          string
	Index         int // zero-based position within the publication
	Total         int // total chunks for the publication
}

// DocumentID returns the deterministic index document ID for the chunk.
func (c *Chunk) DocumentID() ID {
	return IDFromContent(string(c.PublicationID) + "#" + strconv.Itoa(c.Index) + "#" + c.Text)
}

// Metadata keys stored alongside each chunk in the embedding index.
const (
	MetaID          = "id"
	MetaTitle       = "title"
	MetaAuthor      = "author"
	MetaLicense     = "license"
	MetaAwards      = "awards"
	MetaChunkIndex  = "chunk_index"
	MetaTotalChunks = "total_chunks"
	MetaSource      = "source"
)

// SourceLabel tags every indexed chunk with its corpus of origin.
const SourceLabel = "publication"

// Metadata flattens the chunk's inherited fields into the map form the
// embedding index stores.
func (c *Chunk) Metadata() map[string]string {
	return map[string]string{
		MetaID:          string(c.PublicationID),
		MetaTitle:       c.Title,
		MetaAuthor:      c.Author,
		MetaLicense:     c.License,
		MetaAwards:      c.Awards,
		MetaChunkIndex:  strconv.Itoa(c.Index),
		MetaTotalChunks: strconv.Itoa(c.Total),
		MetaSource:      SourceLabel,
	}
}

// ChunkFromMetadata rebuilds a Chunk from index text and metadata.
// Missing numeric fields default to zero; missing awards default to NoAwards.
func ChunkFromMetadata(text string, meta map[string]string) *Chunk {
	awards := meta[MetaAwards]
	if awards == "" {
		awards = NoAwards
	}
	index, _ := strconv.Atoi(meta[MetaChunkIndex])
	total, _ := strconv.Atoi(meta[MetaTotalChunks])
	return &Chunk{
		PublicationID: ID(meta[MetaID]),
		Title:         meta[MetaTitle],
		Author:        meta[MetaAuthor],
		License:       meta[MetaLicense],
		Awards:        awards,
		Text:          text,
		Index:         index,
		Total:         total,
	}
}

// Hit is a retrieved chunk together with its similarity score.
type Hit struct {
	Chunk *Chunk
	Score float32
}
