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

package textdiff_test

import (
	"math/rand/v2"
	"os/exec"
	"strings"
	"testing"

	"tokenly.dev/diff/internal/unixpatch"
	"tokenly.dev/diff/textdiff"
)

// TestUnifiedAppliesWithPatch checks the Validity property end-to-end: feeding Unified's output to
// the real system patch tool reproduces y byte-for-byte. It depends on an external binary, so it
// skips itself when patch isn't installed rather than failing.
func TestUnifiedAppliesWithPatch(t *testing.T) {
	if _, err := exec.LookPath("patch"); err != nil {
		t.Skip("patch binary not available")
	}

	tests := []struct {
		name string
		x, y string
	}{
		{
			name: "single-line-change",
			x:    "one\ntwo\nthree\n",
			y:    "one\nTWO\nthree\n",
		},
		{
			name: "insertion-at-start",
			x:    "b\nc\n",
			y:    "a\nb\nc\n",
		},
		{
			name: "deletion-at-end",
			x:    "a\nb\nc\n",
			y:    "a\nb\n",
		},
		{
			name: "missing-trailing-newline",
			x:    "a\nb\nc",
			y:    "a\nB\nc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := textdiff.Unified(tt.x, tt.y)
			if d == "" {
				if tt.x != tt.y {
					t.Fatalf("Unified returned no diff for distinct inputs")
				}
				return
			}
			got, err := unixpatch.Patch(tt.x, d)
			if err != nil {
				t.Fatalf("patch failed: %v\ndiff:\n%s", err, d)
			}
			if got != tt.y {
				t.Errorf("patch applied result differs:\ngot:  %q\nwant: %q", got, tt.y)
			}
		})
	}
}

// TestUnifiedAppliesWithPatchRandomized exercises the same property over randomly generated,
// line-shuffled inputs, the way a fuzz corpus would, but deterministically seeded so the module
// never needs to run the Go toolchain's fuzz engine to get repeatable coverage.
func TestUnifiedAppliesWithPatchRandomized(t *testing.T) {
	if _, err := exec.LookPath("patch"); err != nil {
		t.Skip("patch binary not available")
	}

	rng := rand.New(rand.NewPCG(7, 13))
	alphabet := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}
	randLines := func(n int) []string {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return lines
	}

	for trial := range 20 {
		x := randLines(1 + rng.IntN(12))
		y := randLines(1 + rng.IntN(12))
		xs := strings.Join(x, "\n") + "\n"
		ys := strings.Join(y, "\n") + "\n"

		d := textdiff.Unified(xs, ys)
		if d == "" {
			continue
		}
		got, err := unixpatch.Patch(xs, d)
		if err != nil {
			t.Fatalf("trial %d: patch failed: %v\ndiff:\n%s", trial, err, d)
		}
		if got != ys {
			t.Errorf("trial %d: patch applied result differs:\ngot:  %q\nwant: %q", trial, got, ys)
		}
	}
}
