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
	"errors"

	"tokenly.dev/diff/internal/token"
)

// ErrTooManyTokens is returned by Interner.NewInputFile when inserting another token would
// exceed the id space.
var ErrTooManyTokens = token.ErrTooManyTokens

// ErrMismatchedInterner is returned when two InputFiles passed to the same comparison were built
// from token ids assigned by different Interners, a combination that can only produce meaningless
// results since the same id would refer to different tokens on each side.
var ErrMismatchedInterner = errors.New("diff: before and after were interned by different Interners")
