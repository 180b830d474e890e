// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidPublication indicates a Publication failed validation.
	ErrInvalidPublication = errors.New("invalid publication")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyText indicates the chunk Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrChunkIndexOutOfRange indicates Index is negative or not below Total.
	ErrChunkIndexOutOfRange = errors.New("chunk index out of range")
)

// ErrorKind classifies pipeline failures for boundary reporting.
type ErrorKind int

const (
	// KindUnknown is the zero value for unclassified failures.
	KindUnknown ErrorKind = iota
	// KindCorpusMissing indicates the corpus source could not be read at ingest start.
	KindCorpusMissing
	// KindCorpusInvalid indicates the corpus source could not be parsed.
	KindCorpusInvalid
	// KindIndexWrite indicates an embedding-index write failed mid-batch.
	KindIndexWrite
	// KindEmbedding indicates the embedding collaborator failed.
	KindEmbedding
	// KindGeneration indicates the answer-generation collaborator failed.
	KindGeneration
)

// String returns a stable label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindCorpusMissing:
		return "corpus_missing"
	case KindCorpusInvalid:
		return "corpus_invalid"
	case KindIndexWrite:
		return "index_write"
	case KindEmbedding:
		return "embedding"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// PipelineError carries a failure kind across package boundaries so callers
// can decide how to surface it without string matching. Rendering to text is
// a boundary concern only.
type PipelineError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError wraps err with a kind and the operation that failed.
func NewPipelineError(kind ErrorKind, op string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the ErrorKind from err, or KindUnknown if err does not
// carry one.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}
