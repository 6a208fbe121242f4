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

import "tokenly.dev/diff/internal/config"

// Option configures the behavior of the comparison functions in this package.
type Option = config.Option

// Algorithm selects the engine used to find the common subsequence.
type Algorithm = config.Algorithm

const (
	// Myers is the linear-space middle-snake bisection engine. It's the default.
	Myers = config.Myers
	// Histogram is the rarity-ordered anchor search engine.
	Histogram = config.Histogram
)

// Context sets the number of matching elements included as a prefix and suffix around each hunk.
// The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = n
		return config.Context
	}
}

// Optimal forces an exact comparison irrespective of cost. By default, comparison functions limit
// the cost of large, highly dissimilar inputs by applying heuristics that trade optimality for a
// bounded runtime. Optimal only affects the Myers engine; it cannot be combined with
// WithAlgorithm(Histogram).
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Optimal = true
		return config.Optimal
	}
}

// WithAlgorithm selects the engine used to find the common subsequence. The default is Myers.
func WithAlgorithm(alg Algorithm) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Algorithm = alg
		return config.AlgorithmFlag
	}
}

// allowedOptions is the set of options accepted by this package's comparison functions.
//
// IndentHeuristic and ColorFlag are accepted here too, not just by textdiff: Hunks and Edits are
// generic over any comparable T, and for most T both flags are simply inert (indentFuncFor returns
// nil, and nothing in this package reads cfg.Color), but textdiff builds its
// InputFile[byteview.ByteView] through this same package, so its entry points need to let the
// options through rather than panic.
const allowedOptions = config.Context | config.Optimal | config.AlgorithmFlag | config.IndentHeuristic | config.ColorFlag
