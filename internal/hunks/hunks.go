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

// Package hunks turns a pair of changed-bit vectors, as produced by the myers and histogram
// engines and refined by postprocess, into a sequence of hunks: contiguous runs that mix at least
// one change with a bounded amount of surrounding context.
package hunks

// Range is a half-open range [Start, End) of element positions in one of the two inputs.
type Range struct {
	Start, End int
}

// Len returns the number of elements in r.
func (r Range) Len() int { return r.End - r.Start }

// Hunk is one contiguous region of a diff: Before and After give the ranges of the two inputs it
// spans. A hunk always starts and ends in lockstep: the element immediately before Before.Start
// equals the element immediately before After.Start (and likewise at the end), except when the
// hunk touches the start or end of the input.
type Hunk struct {
	Before, After Range
}

// Walk reconstructs the hunks implied by rx and ry, nx and ny giving the number of elements in x
// and y respectively (rx and ry may be longer than nx/ny; only the first nx/ny entries of each are
// read). Each hunk is padded with up to context elements of unchanged lead-in/lead-out on both
// sides; hunks whose padded context windows would overlap or touch are merged into one, matching
// how a unified diff groups nearby changes together.
func Walk(rx, ry []bool, nx, ny, context int) []Hunk {
	runs := rawRuns(rx, ry, nx, ny)
	if len(runs) == 0 {
		return nil
	}

	hunks := make([]Hunk, 0, len(runs))
	cur := pad(runs[0], nx, ny, context)
	for _, run := range runs[1:] {
		next := pad(run, nx, ny, context)
		// The gap between the end of the current hunk's unpadded run and the start of the next
		// run is unchanged on both sides (rawRuns guarantees that); if padding both sides by
		// context would make their windows touch or overlap, merge rather than split.
		if next.Before.Start <= cur.Before.End && next.After.Start <= cur.After.End {
			cur.Before.End = next.Before.End
			cur.After.End = next.After.End
			continue
		}
		hunks = append(hunks, cur)
		cur = next
	}
	hunks = append(hunks, cur)
	return hunks
}

// rawRuns walks rx and ry in lockstep and returns every maximal contiguous span where at least one
// side has a change, with no context applied.
func rawRuns(rx, ry []bool, nx, ny int) []Hunk {
	var runs []Hunk
	s, t := 0, 0
	for s < nx || t < ny {
		sChanged := s < nx && rx[s]
		tChanged := t < ny && ry[t]
		if !sChanged && !tChanged {
			s++
			t++
			continue
		}
		bs, bt := s, t
		for (s < nx && rx[s]) || (t < ny && ry[t]) {
			if s < nx && rx[s] {
				s++
			}
			if t < ny && ry[t] {
				t++
			}
		}
		runs = append(runs, Hunk{Range{bs, s}, Range{bt, t}})
	}
	return runs
}

func pad(h Hunk, nx, ny, context int) Hunk {
	h.Before.Start = max(h.Before.Start-context, 0)
	h.Before.End = min(h.Before.End+context, nx)
	h.After.Start = max(h.After.Start-context, 0)
	h.After.End = min(h.After.End+context, ny)
	return h
}
