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

package postprocess

// Merge collapses two adjacent changed groups that are separated only by a common run of at most
// maxCommonRun elements on both sides, by marking the bridging run as changed too. This avoids a
// rendered diff showing, e.g., a single unchanged line sandwiched between two otherwise-adjacent
// hunks, which reads as noise rather than as two meaningfully separate changes.
func Merge(rx, ry []bool, maxCommonRun int) {
	mergeSide(rx, maxCommonRun)
	mergeSide(ry, maxCommonRun)
}

func mergeSide(r []bool, maxCommonRun int) {
	n := len(r)
	i := 0
	for i < n && !r[i] {
		i++
	}
	for i < n {
		j := i
		for j < n && r[j] {
			j++
		}
		// [i, j) is a changed group. Look ahead for a common run of length <= maxCommonRun
		// followed by another changed group.
		k := j
		for k < n && !r[k] && k-j < maxCommonRun {
			k++
		}
		if k < n && r[k] && k > j {
			for p := j; p < k; p++ {
				r[p] = true
			}
			i = j // re-scan from j now that it's part of the changed run
			continue
		}
		i = k
		for i < n && !r[i] {
			i++
		}
	}
}
