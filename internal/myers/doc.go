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

// Package myers implements the linear-space variant of Myers' O(ND) algorithm, described in
// section 4.2 of Myers' paper.
//
// # Myers' algorithm
//
// The algorithm is a graph search on the graph modeling all possible edits that transform x to y.
// Every vertex (s, t) corresponds to a state where the first s elements of x and the first t
// elements of y have been consumed. A step to the right deletes an element of x, a step down
// inserts an element of y, and when x[s] == y[t] there's also a diagonal edge representing a
// match.
//
// The algorithm finds a minimum-cost path from (0,0) to (N,M) where horizontal and vertical edges
// cost 1 and diagonal edges cost 0. Let a D-path be a path with exactly D non-diagonal edges. A
// D-path is furthest reaching on diagonal k if it's one of the D-paths ending on k whose endpoint
// has the greatest row number of all such paths.
//
// There's a D-path from (0,0) to (N,M) iff there's a ceil(D/2)-path from (0,0) to some (s,t) and a
// floor(D/2)-path from some (s',t') to (N,M), such that s-t == s'-t' (the two paths end on the same
// diagonal) and the forward path's endpoint doesn't precede the backward path's start. This lets
// the algorithm run a forward search from (0,0) and a backward search from (N,M) simultaneously; as
// soon as the two searches meet on a diagonal, that meeting point (the "middle snake") splits the
// problem into two independent subproblems, which are solved recursively. Because only the
// furthest-reaching endpoint per diagonal is kept (not a full edit graph), the algorithm needs only
// O(N+M) space.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// # Heuristics
//
// Three heuristics bound the otherwise O(ND) worst case, applied in this precedence:
//
//  1. Cheap common-subsequence shortcut: if the two middles are already equal, nothing is marked
//     changed.
//  2. TOO_EXPENSIVE (Paul Eggert): if the search cost d exceeds a limit derived from sqrt(N+M),
//     the search is aborted and the best middle snake found so far is used to split the problem,
//     trading optimality for a bound on runtime.
//  3. Too-large fallback: if N+M exceeds an absolute threshold, Myers is skipped entirely and
//     everything is marked changed; this is the caller's responsibility (see TooLargeThreshold).
package myers
