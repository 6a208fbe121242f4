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

package myers

import "math"

// Engine holds the scratch state for one Diff call. It's sized from the inputs once and reused
// across the recursive calls split makes, so a single Diff call never allocates more than a
// handful of times regardless of how many times the problem is bisected.
type Engine struct {
	x, y []int

	// vf and vb are the v-arrays for the forward and backward search, carved out of a single
	// backing allocation. They're disjoint slices of that allocation, not aliased views of the
	// same elements: the forward search only ever reads and writes vf, the backward search only
	// ever reads and writes vb. This is deliberate — an implementation that let both searches
	// share index ranges of one array risks the backward search clobbering an endpoint the
	// forward search hasn't compared against yet, which would report a "meeting" that isn't one.
	vf, vb []int
	v0     int

	costLimit int

	// xidx and yidx map a local index in x / y back to the position in the caller's result
	// vectors. They default to the identity mapping; histogram sets them via SetIdx when falling
	// back to Myers on a subrange of its own compacted arrays so the recursion's changed-bit
	// writes land at the right place without Myers needing to know about histogram's index space.
	xidx, yidx []int
	// idxOverride is true for exactly one following DiffInto call after SetIdx, after which
	// DiffInto reverts to building its own identity mapping.
	idxOverride bool

	rx, ry []bool
}

// New creates an Engine ready for reuse across multiple Diff calls (each call re-initializes the
// scratch buffers to the new input sizes).
func New() *Engine {
	return &Engine{}
}

// Diff compares x and y and returns changed-bit vectors: rx[s] is true iff x[s] isn't part of the
// chosen common subsequence, and likewise for ry[t]. A common prefix or suffix is allowed: every
// subproblem strips its own before searching.
//
// If optimal is false, the TOO_EXPENSIVE heuristic may produce a suboptimal (but still valid) edit
// script for large, highly different inputs, in exchange for an O(N^1.5 log N) worst case instead
// of O(ND).
func (e *Engine) Diff(x, y []int, optimal bool) (rx, ry []bool) {
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	e.DiffInto(x, y, rx, ry, optimal)
	return rx, ry
}

// DiffInto is like Diff but writes into caller-supplied changed-bit vectors, each one longer than
// x / y by one element of headroom (mirroring Diff's own allocation). This lets histogram share
// its own result buffers with a Myers fallback instead of Myers allocating its own.
func (e *Engine) DiffInto(x, y []int, rx, ry []bool, optimal bool) {
	e.x, e.y = x, y
	e.rx, e.ry = rx, ry
	if e.idxOverride {
		e.idxOverride = false
	} else {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		e.xidx = idx[:len(x)]
		e.yidx = idx[:len(y)]
	}

	if len(x) == 0 {
		for t := range y {
			ry[e.yidx[t]] = true
		}
		return
	}
	if len(y) == 0 {
		for s := range x {
			rx[e.xidx[s]] = true
		}
		return
	}

	// Heuristic 1 (cheap common-subsequence shortcut): if the two middles are already equal,
	// there's nothing to search for.
	if len(x) == len(y) && intsEqual(x, y) {
		return
	}

	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)
	e.vf = buf[:vlen]
	e.vb = buf[vlen:]
	e.v0 = diagonals + 1

	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	e.costLimit = max(minCostLimit, costLimit)

	e.compare(0, len(x), 0, len(y), optimal)
}

// SetIdx overrides the index mapping used to translate local positions in x / y into the result
// vectors for exactly the next DiffInto call, with slices exactly as long as the x, y that call
// will receive. After that call, DiffInto reverts to the identity mapping.
func (e *Engine) SetIdx(xidx, yidx []int) {
	e.xidx, e.yidx = xidx, yidx
	e.idxOverride = true
}

func intsEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// compare finds an optimal d-path from (xmin, ymin) to (xmax, ymax).
//
// A common prefix or suffix of x[xmin:xmax] and y[ymin:ymax] is stripped first; it stays unchanged.
func (e *Engine) compare(xmin, xmax, ymin, ymax int, optimal bool) {
	for xmin < xmax && ymin < ymax && e.x[xmin] == e.y[ymin] {
		xmin++
		ymin++
	}
	for xmax > xmin && ymax > ymin && e.x[xmax-1] == e.y[ymax-1] {
		xmax--
		ymax--
	}
	switch {
	case xmin == xmax:
		for t := ymin; t < ymax; t++ {
			e.ry[e.yidx[t]] = true
		}
	case ymin == ymax:
		for s := xmin; s < xmax; s++ {
			e.rx[e.xidx[s]] = true
		}
	default:
		s0, s1, t0, t1, opt0, opt1 := e.split(xmin, xmax, ymin, ymax, optimal)
		e.compare(xmin, s0, ymin, t0, opt0)
		e.compare(s1, xmax, t1, ymax, opt1)
	}
}

// split finds the endpoints of a, possibly empty, sequence of diagonals in the middle of an
// optimal path from (xmin,ymin) to (xmax,ymax).
//
// x[xmin:xmax] and y[ymin:ymax] must not have a common prefix or suffix and may not both be empty.
func (e *Engine) split(xmin, xmax, ymin, ymax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	N, M := xmax-xmin, ymax-ymin
	x, y := e.x, e.y
	vf, vb := e.vf, e.vb
	v0 := e.v0

	kmin, kmax := xmin-ymax, xmax-ymin

	fmid, bmid := xmin-ymin, xmax-ymax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	odd := (N-M)%2 != 0

	vf[v0+fmid] = xmin
	vb[v0+bmid] = xmax

	for d := 1; ; d++ {
		// Forward iteration.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < xmax && t < ymax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true, true
			}
		}

		// Backward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > xmin && t > ymin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0, true, true
			}
		}

		if optimal {
			continue
		}

		// Heuristic 2 (TOO_EXPENSIVE): limit the work spent looking for an optimal path by
		// picking a good-enough middle diagonal once the cost exceeds costLimit.
		if d >= e.costLimit {
			fbest, fbestk := math.MinInt, math.MinInt
			for k := fmin; k <= fmax; k += 2 {
				k0 := k + v0
				s := vf[k0]
				t := s - k
				if xmin <= s && s < xmax && ymin <= t && t < ymax && fbest < s+t {
					fbest = s + t
					fbestk = k
				}
			}

			bbest, bbestk := math.MaxInt, math.MaxInt
			for k := bmin; k <= bmax; k += 2 {
				k0 := k + v0
				s := vb[k0]
				t := s - k
				if xmin <= s && s < xmax && ymin <= t && t < ymax && s+t < bbest {
					bbest = s + t
					bbestk = k
				}
			}

			if fbestk == math.MinInt && bbestk == math.MaxInt {
				// No partial progress at all: mark everything in range changed.
				for s := xmin; s < xmax; s++ {
					e.rx[e.xidx[s]] = true
				}
				for t := ymin; t < ymax; t++ {
					e.ry[e.yidx[t]] = true
				}
				return xmin, xmin, ymin, ymin, true, true
			}

			if bbestk == math.MaxInt || (fbestk != math.MinInt && (xmax+ymax)-bbest < fbest-(xmin+ymin)) {
				k := fbestk
				k0 := k + v0
				s := vf[k0]
				t := s - k

				var pk int
				if vf[k0-1] < vf[k0+1] {
					pk = k + 1
				} else {
					pk = k - 1
				}
				ps := vf[pk+v0]
				pt := ps - pk
				diag := min(s-ps, t-pt)
				s0, t0 := s-diag, t-diag
				return s0, s, t0, t, true, false
			} else {
				k := bbestk
				k0 := k + v0
				s := vb[k0]
				t := s - k

				var pk int
				if vb[k0-1] < vb[k0+1] {
					pk = k - 1
				} else {
					pk = k + 1
				}
				ps := vb[pk+v0]
				pt := ps - pk
				diag := min(ps-s, pt-t)
				s0, t0 := s+diag, t+diag
				return s, s0, t, t0, false, true
			}
		}
	}
}
