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

// Package diff computes minimal edit scripts between two ordered sequences of comparable values.
//
// Given a before sequence x and an after sequence y, diff determines which contiguous regions of x
// were removed and which contiguous regions of y were inserted such that keeping the rest in order
// reconstructs y from x. The computation runs in four stages:
//
//  1. Common prefix and suffix are stripped; unique-to-one-side elements are classified up front
//     (package internal/input), shrinking the problem handed to the engine.
//  2. One of two engines computes the changed positions: Myers (package internal/myers), a
//     linear-space middle-snake bisection, or Histogram (package internal/histogram), a rarity-
//     anchored recursive split. Both implement the same contract: fill a per-side boolean array
//     marking which positions are not part of the chosen common subsequence.
//  3. The postprocessor (package internal/postprocess) slides ambiguous hunk boundaries to a
//     canonical position and merges hunks separated only by a short common run.
//  4. The sink adapter (package internal/hunks) walks the two bit arrays and reconstructs
//     (before_range, after_range) hunks, padded with a configurable amount of context.
//
// Tokens are compared with Go equality (the comparable constraint); for comparing text rather than
// arbitrary tokens, see the textdiff subpackage.
package diff
