// Package ingestion provides pipeline orchestration for building the
// embedding index from a publication corpus.
//
// The Pipeline type manages the ingestion workflow, including:
//   - Loading and coercing raw corpus records
//   - Extracting awards from descriptions and tags
//   - Composing and chunking publication text
//   - Submitting chunk documents to the index in bounded batches
//
// Per-publication work is performed concurrently using a worker pool to
// maximize throughput. A failed index batch aborts the run and wipes the
// partial index so the index never mixes corpus versions.
package ingestion
