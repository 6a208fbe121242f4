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

package hunks_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tokenly.dev/diff/internal/hunks"
)

func TestWalkNoChanges(t *testing.T) {
	rx := make([]bool, 5)
	ry := make([]bool, 5)
	got := hunks.Walk(rx, ry, 5, 5, 3)
	if got != nil {
		t.Errorf("Walk with no changes = %v, want nil", got)
	}
}

func TestWalkSingleHunk(t *testing.T) {
	// x = [a b c d e], y = [a b X d e]: c replaced with X at index 2.
	rx := []bool{false, false, true, false, false}
	ry := []bool{false, false, true, false, false}
	got := hunks.Walk(rx, ry, 5, 5, 1)
	want := []hunks.Hunk{
		{Before: hunks.Range{1, 4}, After: hunks.Range{1, 4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkMergesNearbyHunks(t *testing.T) {
	// Two single-element changes separated by one unchanged element: with context=2 their windows
	// overlap and must merge into a single hunk.
	rx := []bool{true, false, true}
	ry := []bool{true, false, true}
	got := hunks.Walk(rx, ry, 3, 3, 2)
	want := []hunks.Hunk{
		{Before: hunks.Range{0, 3}, After: hunks.Range{0, 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkKeepsDistantHunksSeparate(t *testing.T) {
	rx := []bool{true, false, false, false, false, true}
	ry := []bool{true, false, false, false, false, true}
	got := hunks.Walk(rx, ry, 6, 6, 1)
	want := []hunks.Hunk{
		{Before: hunks.Range{0, 2}, After: hunks.Range{0, 2}},
		{Before: hunks.Range{4, 6}, After: hunks.Range{4, 6}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkPureInsertion(t *testing.T) {
	rx := []bool{false, false}
	ry := []bool{false, true, false}
	got := hunks.Walk(rx, ry, 2, 3, 1)
	want := []hunks.Hunk{
		{Before: hunks.Range{0, 2}, After: hunks.Range{0, 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(...) mismatch (-want +got):\n%s", diff)
	}
}
