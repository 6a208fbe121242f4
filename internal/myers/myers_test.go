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

package myers_test

import (
	"math/rand/v2"
	"testing"

	"tokenly.dev/diff/internal/myers"
)

func apply(x, y []int, rx, ry []bool) []int {
	var out []int
	s, t := 0, 0
	for s < len(x) || t < len(y) {
		switch {
		case s < len(x) && rx[s]:
			s++
		case t < len(y) && ry[t]:
			out = append(out, y[t])
			t++
		default:
			out = append(out, x[s])
			s++
			t++
		}
	}
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiffReconstructsY(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
	}{
		{"empty-both", nil, nil},
		{"empty-x", nil, []int{1, 2, 3}},
		{"empty-y", []int{1, 2, 3}, nil},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}},
		{"disjoint", []int{1, 2, 3}, []int{4, 5, 6}},
		{"classic", []int{1, 2, 3, 4, 5}, []int{2, 3, 5, 4, 8}},
		{"one-change", []int{1, 2, 3}, []int{1, 9, 3}},
		{"repeats", []int{1, 1, 1, 2}, []int{1, 2, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := myers.New()
			rx, ry := e.Diff(tt.x, tt.y, true)
			got := apply(tt.x, tt.y, rx, ry)
			if !equal(got, tt.y) {
				t.Errorf("Diff(%v, %v) reconstructs %v, want %v", tt.x, tt.y, got, tt.y)
			}
		})
	}
}

func TestDiffHeuristicReconstructsY(t *testing.T) {
	// Large, highly dissimilar inputs exercise the TOO_EXPENSIVE heuristic; the result must still
	// be a valid (if not minimal) edit script.
	rng := rand.New(rand.NewPCG(1, 2))
	x := make([]int, 2000)
	y := make([]int, 2000)
	for i := range x {
		x[i] = rng.IntN(50)
	}
	for i := range y {
		y[i] = rng.IntN(50)
	}
	e := myers.New()
	rx, ry := e.Diff(x, y, false)
	got := apply(x, y, rx, ry)
	if !equal(got, y) {
		t.Fatalf("heuristic Diff did not reconstruct y (len got=%d, len y=%d)", len(got), len(y))
	}
}

func TestDiffIsOptimalOnSmallInputs(t *testing.T) {
	// For small inputs, the edit script should be exactly minimal: one substitution is one change
	// on each side, not more.
	e := myers.New()
	rx, ry := e.Diff([]int{1, 2, 3}, []int{1, 9, 3}, true)
	n := 0
	for _, v := range rx {
		if v {
			n++
		}
	}
	m := 0
	for _, v := range ry {
		if v {
			m++
		}
	}
	if n != 1 || m != 1 {
		t.Errorf("substitution diff: rx has %d changes, ry has %d changes, want 1 and 1", n, m)
	}
}

func FuzzDiffNeverPanics(f *testing.F) {
	f.Add([]byte{1, 2, 3}, []byte{1, 2, 3})
	f.Add([]byte{}, []byte{1})
	f.Add([]byte{1, 2, 3, 4}, []byte{4, 3, 2, 1})
	f.Fuzz(func(t *testing.T, xb, yb []byte) {
		x := make([]int, len(xb))
		for i, b := range xb {
			x[i] = int(b % 8)
		}
		y := make([]int, len(yb))
		for i, b := range yb {
			y[i] = int(b % 8)
		}
		e := myers.New()
		rx, ry := e.Diff(x, y, true)
		if got := apply(x, y, rx, ry); !equal(got, y) {
			t.Fatalf("Diff(%v, %v) reconstructs %v, want %v", x, y, got, y)
		}
	})
}
