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

package diff

import (
	"iter"

	"tokenly.dev/diff/internal/byteview"
	"tokenly.dev/diff/internal/config"
	"tokenly.dev/diff/internal/histogram"
	"tokenly.dev/diff/internal/hunks"
	"tokenly.dev/diff/internal/input"
	"tokenly.dev/diff/internal/myers"
	"tokenly.dev/diff/internal/postprocess"
	"tokenly.dev/diff/internal/token"
)

// Interner maps values of type T to dense token ids so the comparison functions in this package
// can operate on compact integer arrays with O(1) equality instead of calling T's equality
// directly on every comparison.
//
// An Interner is not safe for concurrent use.
type Interner[T comparable] struct {
	in *token.Interner[T]
}

// NewInterner creates an empty Interner.
func NewInterner[T comparable]() *Interner[T] {
	return &Interner[T]{in: token.New[T]()}
}

// NewInternerSize creates an empty Interner with capacity for n tokens preallocated.
func NewInternerSize[T comparable](n int) *Interner[T] {
	return &Interner[T]{in: token.NewSize[T](n)}
}

// Len returns the number of tokens currently interned.
func (in *Interner[T]) Len() int { return in.in.Len() }

// EraseAfter truncates the interner to the first n tokens, invalidating any InputFile built from
// ids >= n. See the token package for the intended reuse pattern.
func (in *Interner[T]) EraseAfter(n int) { in.in.EraseAfter(n) }

// InputFile wraps one side of a comparison: a sequence of values, interned once up front. The same
// InputFile can be reused as either side of many comparisons.
type InputFile[T comparable] struct {
	in  *token.Interner[T]
	ids []token.Id
}

// NewInputFile interns every element of ts with in and wraps the resulting ids for use in a
// comparison. It fails with ErrTooManyTokens if in would exceed its id space.
func (in *Interner[T]) NewInputFile(ts []T) (*InputFile[T], error) {
	ids, err := in.in.InternAll(ts)
	if err != nil {
		return nil, err
	}
	return &InputFile[T]{in: in.in, ids: ids}, nil
}

// Len returns the number of elements in f.
func (f *InputFile[T]) Len() int { return len(f.ids) }

// result holds the engine output shared by every entry point: the changed-bit arrays for before
// and after, after postprocessing.
type result[T comparable] struct {
	before, after *InputFile[T]
	rx, ry        []bool
	cfg           config.Config
}

func compare[T comparable](before, after *InputFile[T], opts []Option) (result[T], error) {
	if before.in != after.in {
		return result[T]{}, ErrMismatchedInterner
	}
	cfg := config.FromOptions(opts, allowedOptions)

	x, y := before.ids, after.ids
	b := input.StripAffix(x, y)

	beforeFile := input.NewFile(x)
	afterFile := input.NewFile(y)
	r := input.Reduce(x, y, b, beforeFile, afterFile)

	const tooLarge = myers.TooLargeThreshold
	switch {
	case float64(len(r.X)+len(r.Y)) > tooLarge:
		for _, idx := range r.XIdx {
			beforeFile.Changed[idx] = true
		}
		for _, idx := range r.YIdx {
			afterFile.Changed[idx] = true
		}
	case cfg.Algorithm == config.Histogram:
		e := histogram.New()
		crx, cry := e.Diff(r.X, r.Y, cfg.Optimal)
		scatter(r.XIdx, crx, beforeFile.Changed)
		scatter(r.YIdx, cry, afterFile.Changed)
	default:
		e := myers.New()
		crx, cry := e.Diff(r.X, r.Y, cfg.Optimal)
		scatter(r.XIdx, crx, beforeFile.Changed)
		scatter(r.YIdx, cry, afterFile.Changed)
	}

	postprocess.Slide(x, y, beforeFile.Changed, afterFile.Changed, indentFuncFor(before, cfg))
	postprocess.Merge(beforeFile.Changed, afterFile.Changed, 3)

	return result[T]{before: before, after: after, rx: beforeFile.Changed, ry: afterFile.Changed, cfg: cfg}, nil
}

// indentFuncFor returns the indent-scoring function Slide should use, if any. The indent heuristic
// is only meaningful for lines of text, so it's wired up for InputFile[byteview.ByteView] (the type
// textdiff builds its comparisons on) and left nil for every other T.
func indentFuncFor[T comparable](before *InputFile[T], cfg config.Config) postprocess.IndentFunc[token.Id] {
	if !cfg.IndentHeuristic {
		return nil
	}
	bf, ok := any(before).(*InputFile[byteview.ByteView])
	if !ok {
		return nil
	}
	return func(id token.Id) int {
		return postprocess.TextIndent(bf.in.Get(id))
	}
}

// scatter copies the compacted changed-bits back into the original, full-length positions named by
// idx.
func scatter(idx []int, compacted []bool, full []bool) {
	for i, pos := range idx {
		if compacted[i] {
			full[pos] = true
		}
	}
}

// Diff compares before and after and returns the raw changed-bit vectors: beforeChanged[i] is true
// iff before's element at i is not part of the chosen common subsequence, and likewise for
// afterChanged. This is the lowest-level entry point; most callers want Hunks or Edits instead.
func Diff[T comparable](before, after *InputFile[T], opts ...Option) (beforeChanged, afterChanged []bool, err error) {
	r, err := compare(before, after, opts)
	if err != nil {
		return nil, nil, err
	}
	return r.rx, r.ry, nil
}

// Hunks compares before and after and returns the hunks of their edit script, each one padded with
// Context (default 3) matching elements of lead-in and lead-out.
func Hunks[T comparable](before, after *InputFile[T], opts ...Option) ([]Hunk[T], error) {
	r, err := compare(before, after, opts)
	if err != nil {
		return nil, err
	}
	rawHunks := hunks.Walk(r.rx, r.ry, before.Len(), after.Len(), r.cfg.Context)

	out := make([]Hunk[T], len(rawHunks))
	for i, h := range rawHunks {
		out[i] = Hunk[T]{
			X0: h.Before.Start, X1: h.Before.End,
			Y0: h.After.Start, Y1: h.After.End,
			Edits: editsForHunk(before, after, r, h),
		}
	}
	return out, nil
}

// HunksFunc is like Hunks but calls yield for each hunk of the slice Hunks returns, stopping early
// if yield returns false. If Hunks fails, nothing is yielded.
func HunksFunc[T comparable](before, after *InputFile[T], opts ...Option) iter.Seq[Hunk[T]] {
	return func(yield func(Hunk[T]) bool) {
		hs, err := Hunks(before, after, opts...)
		if err != nil {
			return
		}
		for _, h := range hs {
			if !yield(h) {
				return
			}
		}
	}
}

// Edits compares before and after and returns the full edit script: every element of before and
// after, tagged Match, Delete, or Insert.
func Edits[T comparable](before, after *InputFile[T], opts ...Option) ([]Edit[T], error) {
	r, err := compare(before, after, opts)
	if err != nil {
		return nil, err
	}
	return walkEdits(before, after, r, 0, before.Len(), 0, after.Len()), nil
}

// EditsFunc is like Edits but calls yield for each edit of the slice Edits returns, stopping early
// if yield returns false. If Edits fails, nothing is yielded.
func EditsFunc[T comparable](before, after *InputFile[T], opts ...Option) iter.Seq[Edit[T]] {
	return func(yield func(Edit[T]) bool) {
		es, err := Edits(before, after, opts...)
		if err != nil {
			return
		}
		for _, e := range es {
			if !yield(e) {
				return
			}
		}
	}
}

func editsForHunk[T comparable](before, after *InputFile[T], r result[T], h hunks.Hunk) []Edit[T] {
	return walkEdits(before, after, r, h.Before.Start, h.Before.End, h.After.Start, h.After.End)
}

// walkEdits reconstructs the Match/Delete/Insert sequence for before[xmin:xmax] vs. after[ymin:ymax]
// given the changed-bit vectors in r, walking both ranges in lockstep.
func walkEdits[T comparable](before, after *InputFile[T], r result[T], xmin, xmax, ymin, ymax int) []Edit[T] {
	var edits []Edit[T]
	s, t := xmin, ymin
	for s < xmax || t < ymax {
		switch {
		case s < xmax && r.rx[s]:
			edits = append(edits, Edit[T]{Op: Delete, Elem: before.in.Get(before.ids[s])})
			s++
		case t < ymax && r.ry[t]:
			edits = append(edits, Edit[T]{Op: Insert, Elem: after.in.Get(after.ids[t])})
			t++
		default:
			edits = append(edits, Edit[T]{Op: Match, Elem: before.in.Get(before.ids[s])})
			s++
			t++
		}
	}
	return edits
}
