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

// Package histogram implements a histogram diff, the algorithm behind `git diff
// --diff-algorithm=histogram`: a generalization of Bram Cohen's patience diff that picks split
// points by rarity instead of uniqueness.
//
// For a region of x and y still under consideration, the algorithm builds an occurrence index of
// x's elements, then scans y for common elements and extends the common run through each one. A
// run's "rarity" is the largest occurrence count in x of any element along it; the run with the
// lowest rarity wins, ties are broken by preferring the longest run, then by the leftmost
// position. That run becomes an anchor: it is accepted as
// unchanged, and the algorithm recurses independently on the region before the anchor and the
// region after it. An element occurring more than MaxChainLength times in x is never considered as
// an anchor at all, bounding the cost of building and scanning its occurrence chain.
//
// If a region contains no element common to both sides (or every common element is too frequent to
// serve as an anchor), the region is handed to the myers package instead. Because recursion here
// uses an explicit work stack rather than the call stack, a pathological input can't blow the
// goroutine stack the way a naive recursive implementation would.
package histogram
