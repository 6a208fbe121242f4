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

package histogram

import "tokenly.dev/diff/internal/myers"

// MaxChainLength bounds how many occurrences of an element in x are indexed and considered as an
// anchor candidate. This mirrors git's default for the same algorithm: an element occurring more
// often than this is assumed to be too common to be a meaningful split point.
const MaxChainLength = 63

// Engine holds scratch state reused across the regions one Diff call subdivides into.
type Engine struct {
	myers *myers.Engine

	occ       map[int][]int
	tooCommon map[int]bool
	stack     []region
}

// New creates an Engine ready for reuse across multiple Diff calls.
func New() *Engine {
	return &Engine{myers: myers.New(), occ: make(map[int][]int), tooCommon: make(map[int]bool)}
}

type region struct{ xmin, xmax, ymin, ymax int }

// Diff compares x and y and returns changed-bit vectors, in the same sense as myers.Engine.Diff. x
// and y must not share a common prefix or suffix.
//
// optimal is threaded through to every Myers fallback invoked along the way.
func (e *Engine) Diff(x, y []int, optimal bool) (rx, ry []bool) {
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	e.DiffInto(x, y, rx, ry, optimal)
	return rx, ry
}

// DiffInto is like Diff but writes into caller-supplied changed-bit vectors.
func (e *Engine) DiffInto(x, y []int, rx, ry []bool, optimal bool) {
	e.stack = e.stack[:0]
	e.stack = append(e.stack, region{0, len(x), 0, len(y)})
	for len(e.stack) > 0 {
		n := len(e.stack) - 1
		r := e.stack[n]
		e.stack = e.stack[:n]
		e.process(x, y, r, rx, ry, optimal)
	}
}

func (e *Engine) process(x, y []int, r region, rx, ry []bool, optimal bool) {
	// Strip a common affix local to this region: an anchor split can leave either side of the
	// subdivision sharing edge elements that weren't eliminated at the top level.
	for r.xmin < r.xmax && r.ymin < r.ymax && x[r.xmin] == y[r.ymin] {
		r.xmin++
		r.ymin++
	}
	for r.xmax > r.xmin && r.ymax > r.ymin && x[r.xmax-1] == y[r.ymax-1] {
		r.xmax--
		r.ymax--
	}

	switch {
	case r.xmin == r.xmax && r.ymin == r.ymax:
		return
	case r.xmin == r.xmax:
		for t := r.ymin; t < r.ymax; t++ {
			ry[t] = true
		}
		return
	case r.ymin == r.ymax:
		for s := r.xmin; s < r.xmax; s++ {
			rx[s] = true
		}
		return
	}

	as, ae, bs, be, ok := e.findAnchor(x, y, r)
	if !ok {
		e.fallbackToMyers(x, y, r, rx, ry, optimal)
		return
	}

	e.stack = append(e.stack, region{r.xmin, as, r.ymin, bs})
	e.stack = append(e.stack, region{ae, r.xmax, be, r.ymax})
}

// findAnchor scans x[r.xmin:r.xmax] and y[r.ymin:r.ymax] for the common element whose extended run
// has the smallest max-occurrence-count along its span, and returns that run's bounds.
//
// An id that occurs more than MaxChainLength times in x has its chain discarded entirely (occCount
// reports it as too common from then on), so it can never itself be picked as an anchor seed.
func (e *Engine) findAnchor(x, y []int, r region) (as, ae, bs, be int, ok bool) {
	clear(e.occ)
	clear(e.tooCommon)
	for s := r.xmin; s < r.xmax; s++ {
		id := x[s]
		if e.tooCommon[id] {
			continue
		}
		chain := e.occ[id]
		if len(chain) == MaxChainLength {
			delete(e.occ, id)
			e.tooCommon[id] = true
			continue
		}
		e.occ[id] = append(chain, s)
	}

	bestRarity := MaxChainLength + 1
	bestLen := -1
	found := false
	for t := r.ymin; t < r.ymax; t++ {
		chain, exists := e.occ[y[t]]
		if !exists || len(chain) == 0 {
			continue
		}

		// Try every occurrence of this id in x as a candidate anchor position, extend the run
		// as far as it goes in both directions, and track the worst (most common) occurrence
		// count of any token the run passes through. The first occurrence scanned for a given
		// rarity/length pair is the leftmost, so ties naturally favor it.
		for _, s := range chain {
			cs, ct := s, t
			runRarity := len(chain)
			for cs > r.xmin && ct > r.ymin && x[cs-1] == y[ct-1] {
				cs--
				ct--
				if c := e.occCount(x[cs]); c > runRarity {
					runRarity = c
				}
			}
			ce, cte := s+1, t+1
			for ce < r.xmax && cte < r.ymax && x[ce] == y[cte] {
				if c := e.occCount(x[ce]); c > runRarity {
					runRarity = c
				}
				ce++
				cte++
			}
			runLen := ce - cs

			if runRarity < bestRarity || (runRarity == bestRarity && runLen > bestLen) {
				bestRarity = runRarity
				bestLen = runLen
				as, bs = cs, ct
				ae, be = ce, cte
				found = true
			}
		}
	}
	return as, ae, bs, be, found
}

// occCount returns id's occurrence count within the current region, or MaxChainLength+1 if id was
// discarded as too common.
func (e *Engine) occCount(id int) int {
	if e.tooCommon[id] {
		return MaxChainLength + 1
	}
	return len(e.occ[id])
}

func (e *Engine) fallbackToMyers(x, y []int, r region, rx, ry []bool, optimal bool) {
	n := r.xmax - r.xmin
	m := r.ymax - r.ymin
	xidx := make([]int, n)
	yidx := make([]int, m)
	for i := range xidx {
		xidx[i] = r.xmin + i
	}
	for i := range yidx {
		yidx[i] = r.ymin + i
	}
	e.myers.SetIdx(xidx, yidx)
	e.myers.DiffInto(x[r.xmin:r.xmax], y[r.ymin:r.ymax], rx, ry, optimal)
}
