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

// Package token implements the interner that maps arbitrary user tokens to dense 31-bit
// identifiers so that the diff engines can operate on compact integer arrays with O(1) equality
// instead of on the user's token type.
package token

import "errors"

// Id is a dense identifier for an interned token. Ids are assigned in insertion order starting at
// 0, so they are dense and contiguous within one Interner's lifetime.
//
// Id is deliberately 32 bits wide but only uses the low 31 bits: Sentinel, the highest
// representable value, is reserved and never returned by Intern. This keeps the working arrays of
// the diff engines half the width of a 64-bit id, which matters for cache behavior on large
// inputs; see the module's design notes for the rationale.
type Id uint32

// Sentinel is never equal to any id returned by Intern. Engines may use it as an "invalid" or
// "no match" marker without reserving a side channel.
const Sentinel Id = 1<<31 - 1

// ErrTooManyTokens is returned by Intern when assigning a new id would reach Sentinel.
var ErrTooManyTokens = errors.New("token: too many tokens interned")

// Interner is a bidirectional mapping between a user's token type T and dense Ids.
//
// An Interner is not safe for concurrent use; callers that want concurrency should use one
// Interner per goroutine or serialize access externally.
type Interner[T comparable] struct {
	byToken map[T]Id
	byId    []T
}

// New creates an empty Interner.
func New[T comparable]() *Interner[T] {
	return &Interner[T]{byToken: make(map[T]Id)}
}

// NewSize creates an empty Interner with capacity for n tokens preallocated. This lets callers
// amortize allocation when the approximate size of a file is known up front.
func NewSize[T comparable](n int) *Interner[T] {
	return &Interner[T]{
		byToken: make(map[T]Id, n),
		byId:    make([]T, 0, n),
	}
}

// Intern returns the Id for t, assigning a new one if t hasn't been seen before. The returned id
// is stable across calls for the lifetime of the Interner (or until a subsequent EraseAfter
// invalidates it).
func (in *Interner[T]) Intern(t T) (Id, error) {
	if id, ok := in.byToken[t]; ok {
		return id, nil
	}
	if Id(len(in.byId)) >= Sentinel {
		return 0, ErrTooManyTokens
	}
	id := Id(len(in.byId))
	in.byId = append(in.byId, t)
	in.byToken[t] = id
	return id, nil
}

// InternAll interns every element of ts in order and returns the resulting id slice. At the first
// token that doesn't fit it returns a nil slice and ErrTooManyTokens; the tokens before it stay
// interned.
func (in *Interner[T]) InternAll(ts []T) ([]Id, error) {
	ids := make([]Id, len(ts))
	for i, t := range ts {
		id, err := in.Intern(t)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// Get returns the token that was interned as id. It panics if id was never assigned by this
// Interner or was invalidated by a later EraseAfter.
func (in *Interner[T]) Get(id Id) T {
	return in.byId[id]
}

// Len returns the number of tokens currently interned.
func (in *Interner[T]) Len() int {
	return len(in.byId)
}

// EraseAfter truncates the interner to the first n ids: ids >= n become invalid and are removed
// from the lookup table. This lets a caller amortize one Interner across many file comparisons by
// interning a stable side once, recording Len(), and rewinding with EraseAfter after each
// comparison against a new, disposable side.
func (in *Interner[T]) EraseAfter(n int) {
	if n >= len(in.byId) {
		return
	}
	for _, t := range in.byId[n:] {
		delete(in.byToken, t)
	}
	in.byId = in.byId[:n]
}
