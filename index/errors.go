package index

import "errors"

// ErrEmbedderRequired is returned when an embedder is not provided.
var ErrEmbedderRequired = errors.New("embedder required")
