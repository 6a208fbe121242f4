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

// Package input prepares a pair of interned id arrays for the diff engines: it strips the common
// prefix and suffix and classifies the remaining ids as unique (appears on only one side, and is
// therefore always an edit) or common (appears on both sides, and is therefore worth the engines'
// attention).
package input

import "tokenly.dev/diff/internal/token"

// File is a logical view of one side of a diff: its interned ids and a parallel changed-bit
// array. changed[i] is set to true by an engine iff position i isn't part of the chosen common
// subsequence.
type File struct {
	Ids     []token.Id
	Changed []bool
}

// NewFile wraps ids for use by the engines. Changed starts out all-false.
func NewFile(ids []token.Id) *File {
	return &File{Ids: ids, Changed: make([]bool, len(ids))}
}

// Bounds describes the trimmed middle region shared by both sides after affix stripping: the
// engines only ever look at x[XMin:XMax] and y[YMin:YMax].
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Empty reports whether the trimmed middle is empty on both sides.
func (b Bounds) Empty() bool { return b.XMin == b.XMax && b.YMin == b.YMax }

// StripAffix finds the longest common prefix and the longest common suffix of x and y (by id
// equality) and returns the bounds of the remaining middle.
func StripAffix(x, y []token.Id) Bounds {
	xmin, ymin := 0, 0
	xmax, ymax := len(x), len(y)

	for xmin < xmax && ymin < ymax && x[xmin] == y[ymin] {
		xmin++
		ymin++
	}
	for xmax > xmin && ymax > ymin && x[xmax-1] == y[ymax-1] {
		xmax--
		ymax--
	}
	return Bounds{xmin, xmax, ymin, ymax}
}

// The common affix needs no marking step of its own: since
// before.Changed and after.Changed start out all-false, positions outside [XMin:XMax) /
// [YMin:YMax) are unchanged by construction and need no explicit marking.

// Reduced holds the compacted id arrays the engines actually search: ids that are unique to one
// side within the trimmed middle are dropped (they're always an edit, so before/after are marked
// directly), leaving only ids common to both sides, renumbered densely for the engines'
// convenience.
type Reduced struct {
	// X and Y are the compacted ids, restricted to ids occurring in both x[XMin:XMax) and
	// y[YMin:YMax).
	X, Y []int
	// XIdx and YIdx map a compacted index back to the original position: X[i] corresponds to
	// position XIdx[i] in the original before file, Y[j] to YIdx[j] in the original after file.
	XIdx, YIdx []int
}

// Reduce classifies every id in the trimmed middle of x and y as unique or common. Ids unique to
// one side are always deletions or insertions respectively and are marked directly in before /
// after. The remaining, common ids are returned compacted and renumbered so the engines can work
// with small dense integers instead of sparse token.Id values.
func Reduce(x, y []token.Id, b Bounds, before, after *File) Reduced {
	n := b.XMax - b.XMin

	// Assign a dense, negative id to every distinct element seen in x's middle. Scanning y's
	// middle next, an id that's still negative is common to both sides and gets its sign flipped;
	// a y element with no entry at all (the map's int zero value) is unique to y. A final scan
	// over x's middle then separates ids that got flipped (common) from ids that are still
	// negative (unique to x). This three-pass, single-map classification mirrors the technique
	// the teacher's Myers implementation uses for the same reduction.
	ids := make(map[token.Id]int, n)
	for s := b.XMin; s < b.XMax; s++ {
		if ids[x[s]] == 0 {
			ids[x[s]] = -(len(ids) + 1)
		}
	}
	ny := 0
	for t := b.YMin; t < b.YMax; t++ {
		switch id := ids[y[t]]; {
		case id < 0:
			ids[y[t]] = -id
			ny++
		case id > 0:
			ny++
		default:
			// y[t] never appeared in x's middle: always an insertion.
			after.Changed[t] = true
		}
	}
	nx := 0
	for s := b.XMin; s < b.XMax; s++ {
		if ids[x[s]] > 0 {
			nx++
		}
	}

	buf := make([]int, 2*(nx+ny))
	var r Reduced
	r.X, buf = buf[:0:nx], buf[nx:]
	r.XIdx, buf = buf[:0:nx], buf[nx:]
	r.Y, buf = buf[:0:ny], buf[ny:]
	r.YIdx, buf = buf[:0:ny], buf[ny:]

	for s := b.XMin; s < b.XMax; s++ {
		if id := ids[x[s]]; id > 0 {
			r.X = append(r.X, id)
			r.XIdx = append(r.XIdx, s)
		} else {
			before.Changed[s] = true
		}
	}
	for t := b.YMin; t < b.YMax; t++ {
		if id := ids[y[t]]; id > 0 {
			r.Y = append(r.Y, id)
			r.YIdx = append(r.YIdx, t)
		}
		// id <= 0 was already handled (marked as insertion) in the pass above.
	}
	return r
}
