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

//go:generate go tool stringer -type=Op -linecomment

// Op describes what happened to a single element of an edit script.
type Op int

const (
	Match  Op = iota // match
	Delete           // delete
	Insert           // insert
)

// Edit is a single step of an edit script: Op describes what happened, and Elem is the value
// involved (from x for Match and Delete, from y for Insert).
type Edit[T any] struct {
	Op   Op
	Elem T
}

// Hunk is one contiguous region of a diff between x and y: the range [X0, X1) of x and the range
// [Y0, Y1) of y that correspond to it. Outside hunks, x and y agree element for element.
type Hunk[T any] struct {
	X0, X1 int
	Y0, Y1 int

	// Edits is the sequence of matches, deletions, and insertions that transform x[X0:X1] into
	// y[Y0:Y1].
	Edits []Edit[T]
}
