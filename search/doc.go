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


// Package search provides award-aware retrieval over an embedding index.
//
// The Searcher type implements a multi-stage search algorithm:
//   - Award detection: queries naming an award (via tag syntax or known
//     shortcuts) retrieve against the award phrase instead of the raw query
//   - Semantic retrieval from the embedding index
//   - Two-tier award filtering (exact containment, then fuzzy matching)
//     applied only when an award is active
//   - Publication-level deduplication preserving rank order, capped at a
//     configurable number of unique publications
//
// FormatContext renders surviving hits into the labeled context block the
// answer generator consumes.
package search
