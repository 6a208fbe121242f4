// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package postprocess improves the aesthetics of an edit script without changing which elements it
// reports as added or removed.
//
// An optimal edit script is rarely unique: whenever a deleted run is immediately followed by an
// inserted run (or the reverse), the boundary between "changed" and "unchanged" can be slid to any
// position where the shifted run still reads identically, without changing the multiset of
// deletions and insertions. Slide performs this canonicalization, generalizing the indentation
// heuristic by Michael Haggerty (https://github.com/mhagger/diff-slider-tools): lacking any other
// signal, it prefers to align a changed group with a matching group on the other side; failing
// that, an optional scoring function can be used to prefer boundaries humans find more natural
// (e.g. the start of an indented block rather than its last blank line).
//
// Merge then collapses separate hunks that ended up divided only by a short run of unchanged
// elements, which otherwise reads as visual noise once a diff is rendered with surrounding context.
package postprocess
