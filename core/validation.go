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

import "fmt"

// ValidatePublication validates a Publication according to domain rules.
//
// Validation rules:
//   - ID must not be empty (the loader derives one when the source lacks it)
//
// NOT validated (defaults applied by the loader):
//   - Title, Author, License (coerced to documented defaults)
//   - Description (may legitimately be empty)
//   - Awards (may be empty; frozen at index-build time)
func ValidatePublication(pub *Publication) error {
	if pub == nil {
		return fmt.Errorf("%w: publication is nil", ErrInvalidPublication)
	}

	if pub.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPublication, ErrEmptyID)
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - PublicationID must not be empty
//   - Text must not be empty
//   - Index must be in [0, Total)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.PublicationID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyID)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	if chunk.Index < 0 || chunk.Index >= chunk.Total {
		return fmt.Errorf("%w: %w: index %d of %d", ErrInvalidChunk, ErrChunkIndexOutOfRange, chunk.Index, chunk.Total)
	}

	return nil
}
