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


// Package index abstracts the embedding/vector-similarity collaborator.
//
// The pipeline treats the index as opaque: it accepts (text, metadata)
// batches, answers top-k similarity queries, and supports a full wipe as
// its only other mutation. There are no incremental updates; a rebuild
// always starts from a wiped collection.
//
// # Constructor Return Type Pattern
//
// Public constructors (chromem.NewIndex) return the index.Index INTERFACE
// to enforce abstraction and keep callers decoupled from the backing vector
// store. The mock package returns a CONCRETE type so tests can inject
// behavior and assert call counts.
package index
