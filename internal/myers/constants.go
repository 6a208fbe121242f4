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

// minCostLimit is a lower bound for the TOO_EXPENSIVE heuristic: the heuristic only kicks in once
// the cost exceeds this number, so small inputs are always diffed exactly.
const minCostLimit = 4096

// TooLargeThreshold bounds the absolute size of a problem Diff will attempt with the bisection
// search at all. Beyond this, even the TOO_EXPENSIVE heuristic would take too long to even set up,
// so the region is marked entirely changed without running the engine.
const TooLargeThreshold = 4e7
