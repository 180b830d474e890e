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


// Package award extracts, normalizes and matches award names.
//
// Award names arrive from two noisy sources: structured tag lists attached
// to publication records, and free-text descriptions full of generic
// superlatives ("most popular tool"). Extraction consolidates both into a
// single path: every candidate phrase is normalized, validated, and then
// gated on membership in a closed canonical vocabulary by substring
// containment. Containment in either direction tolerates wording variants
// while rejecting non-award superlatives.
//
// The package also provides the query-time pieces: parsing an award
// constraint out of user input (tag "..." syntax and shortcut phrases) and
// the two-tier exact/fuzzy Matcher used to filter retrieved chunks.
package award
