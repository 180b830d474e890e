// Package chunker splits composed publication text into overlapping
// passages sized for the embedding index.
package chunker
