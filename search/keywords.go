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

import (
	"sort"
	"strings"
)

// DedupeExpansions removes redundant expanded keywords: a term is dropped
// when it is a substring of an already-kept longer term. Core keywords are
// exempt and always survive, even as substrings of a longer expansion —
// a cross-language synonym that happens to contain a core keyword as a
// prefix must not delete it. Returns the kept set and the dropped set.
func DedupeExpansions(expanded, coreKeywords []string) (kept, dropped []string) {
	core := make(map[string]bool, len(coreKeywords))
	for _, k := range coreKeywords {
		core[strings.ToLower(k)] = true
	}

	// Longest first, stable within a length, so a term is only ever
	// tested against longer already-kept terms.
	ordered := make([]string, len(expanded))
	copy(ordered, expanded)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	seen := make(map[string]bool, len(ordered))
	for _, candidate := range ordered {
		lower := strings.ToLower(candidate)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		if !core[lower] && subsumedByAny(lower, kept) {
			dropped = append(dropped, lower)
			continue
		}
		kept = append(kept, lower)
	}
	return kept, dropped
}

func subsumedByAny(candidate string, kept []string) bool {
	for _, k := range kept {
		if len(k) > len(candidate) && strings.Contains(k, candidate) {
			return true
		}
	}
	return false
}

// countMatches reports how many of the given keywords occur in the text,
// case-insensitively, as substrings. Substring matching is deliberate: it
// handles CJK text, partial word forms, and hyphenations alike.
func countMatches(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

// matchesAny reports whether any keyword occurs in the text.
func matchesAny(text string, keywords []string) bool {
	return countMatches(text, keywords) > 0
}
