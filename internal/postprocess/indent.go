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

import "tokenly.dev/diff/internal/byteview"

// We don't care if a line is indented more than this and clamp the value to maxIndent, bounding
// the work done on input that isn't indented human-readable text.
const maxIndent = 200

// TextIndent is an IndentFunc for byteview.ByteView lines, measuring leading whitespace the way a
// source file's indentation would be measured: spaces count as one column, tabs advance to the
// next multiple of 8. A line containing only whitespace carries no signal and reports -1.
func TextIndent(line byteview.ByteView) int {
	indent := 0
	for c := range line.Bytes() {
		switch c {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\n', '\v', '\r':
			// Ignore other whitespace.
		default:
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1
}
