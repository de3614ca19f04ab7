// Copyright 2025 The Task Chat Authors
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


package search

import "github.com/wenlzhang/taskchat/core"

// Adaptive gate breakpoints, as fractions of the theoretical maximum
// score. A one-keyword query has to clear a higher bar than a rich one:
// with a single keyword a weak substring hit is usually noise, while five
// keywords matching even partially is signal.
const (
	adaptiveStrictFraction  = 0.35 // 1 keyword
	adaptiveMediumFraction  = 0.25 // 2-3 keywords
	adaptiveRelaxedFraction = 0.15 // 4+ keywords
)

// gateFraction returns the quality-gate fraction for a query. An explicit
// setting wins; 0 selects the adaptive step function. Queries without
// keywords are not gated at all: their candidates were chosen by property
// filters, and there is no relevance signal to gate on.
func gateFraction(explicit float64, q *core.ParsedQuery) float64 {
	if len(q.CoreKeywords) == 0 {
		return 0
	}
	if explicit > 0 {
		return explicit
	}
	switch n := len(q.CoreKeywords); {
	case n <= 1:
		return adaptiveStrictFraction
	case n <= 3:
		return adaptiveMediumFraction
	default:
		return adaptiveRelaxedFraction
	}
}

// applyGate removes tasks scoring below the threshold fraction of the
// theoretical maximum. Returns the surviving tasks and the absolute
// threshold applied.
func applyGate(tasks []core.ScoredTask, fraction, maxScore float64) ([]core.ScoredTask, float64) {
	if fraction <= 0 || maxScore <= 0 {
		return tasks, 0
	}
	threshold := fraction * maxScore
	kept := tasks[:0]
	for _, st := range tasks {
		if st.Final >= threshold {
			kept = append(kept, st)
		}
	}
	return kept, threshold
}
