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


package vocab

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wenlzhang/taskchat/core"
)

// PriorityLevel describes one priority level (1-4) of the user's vocabulary.
type PriorityLevel struct {
	Symbols []string // task markers, e.g. "🔺"
	Aliases []string // natural-language terms in any language
	Weight  float64  // scoring weight, 0-1
}

// StatusCategory describes one status category of the user's vocabulary.
// Key is the stable identifier used for matching and inference; DisplayName
// is user-editable free text and must never be used as a matching key.
type StatusCategory struct {
	Key         string
	Symbols     []string // checkbox symbols, e.g. " ", "x", "/"
	DisplayName string
	Aliases     []string
	Weight      float64 // scoring weight, 0-1
	SortOrder   *int    // explicit sort position, nil = derive from defaults
	Description string  // guidance embedded into LLM prompts
}

// Resolution is the result of disambiguating a single bare word.
type Resolution struct {
	Kind     WordKind
	Status   string // category key when Kind == WordStatus
	Priority int    // when Kind == WordPriority
	DueDate  string // keyword code when Kind == WordDueDate
}

// WordKind classifies what a bare query word refers to.
type WordKind int

const (
	// WordUnknown means the word is plain free text.
	WordUnknown WordKind = iota
	// WordStatus means the word names a status category.
	WordStatus
	// WordPriority means the word names a priority level.
	WordPriority
	// WordDueDate means the word names a due-date keyword.
	WordDueDate
)

// Vocabulary holds the resolved user-configured property vocabulary.
// It is immutable after construction; a fresh instance is built per
// settings load, never mutated by queries.
type Vocabulary struct {
	priorities  map[int]PriorityLevel
	statuses    []StatusCategory // configuration insertion order preserved
	statusByKey map[string]int   // lowercased key -> index into statuses
	dueAliases  map[string]string // lowercased alias -> keyword code
	warnings    []string
}

// Statuses returns the configured status categories in insertion order.
func (v *Vocabulary) Statuses() []StatusCategory {
	return v.statuses
}

// Priorities returns the configured priority levels keyed by level.
func (v *Vocabulary) Priorities() map[int]PriorityLevel {
	return v.priorities
}

// Warnings returns non-fatal configuration problems detected during
// construction, e.g. duplicate explicit sort orders.
func (v *Vocabulary) Warnings() []string {
	return v.warnings
}

// ResolvePriority resolves a token to a priority level.
// Recognized forms: "1"-"4", configured symbols, configured aliases, and the
// "any"/"none" sentinels. Returns core.PriorityUnset when nothing matches.
func (v *Vocabulary) ResolvePriority(token string) int {
	token = strings.TrimSpace(token)
	if token == "" {
		return core.PriorityUnset
	}
	lower := strings.ToLower(token)

	switch lower {
	case "any":
		return core.PriorityAny
	case "none":
		return core.PriorityNone
	}

	if n, err := strconv.Atoi(lower); err == nil {
		if n >= core.PriorityMin && n <= core.PriorityMax {
			return n
		}
		return core.PriorityUnset
	}

	// Deterministic iteration order: level 1 wins over level 2 when a
	// symbol or alias is (mis)configured on both.
	for level := core.PriorityMin; level <= core.PriorityMax; level++ {
		p, ok := v.priorities[level]
		if !ok {
			continue
		}
		for _, alias := range p.Aliases {
			if strings.EqualFold(alias, token) {
				return level
			}
		}
		for _, sym := range p.Symbols {
			if sym == token {
				return level
			}
		}
	}
	return core.PriorityUnset
}

// ResolveStatus resolves a token to a status category key.
// Resolution order: exact category key (case-insensitive), then configured
// aliases, then raw symbols. Display names are deliberately not consulted.
func (v *Vocabulary) ResolveStatus(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if idx, ok := v.statusByKey[strings.ToLower(token)]; ok {
		return v.statuses[idx].Key, true
	}

	for _, s := range v.statuses {
		for _, alias := range s.Aliases {
			if strings.EqualFold(alias, token) {
				return s.Key, true
			}
		}
	}

	for _, s := range v.statuses {
		for _, sym := range s.Symbols {
			if sym == token {
				return s.Key, true
			}
		}
	}

	return "", false
}

// ResolveStatusMulti resolves a list of tokens (typically comma-separated
// query values) to distinct status category keys, preserving first-seen order.
func (v *Vocabulary) ResolveStatusMulti(tokens []string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		key, ok := v.ResolveStatus(tok)
		if !ok || seen[key] {
			continue
		}
		keys = append(keys, key)
		seen[key] = true
	}
	return keys
}

// ResolveDueDateKeyword resolves a token to a due-date keyword code.
// Recognized forms: canonical codes, configured aliases, relative offsets
// ("+3d", "+2w", "+1m") and explicit ISO dates ("2026-09-14").
func (v *Vocabulary) ResolveDueDateKeyword(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	if code, ok := v.dueAliases[token]; ok {
		return code, true
	}
	if isRelativeDate(token) || isISODate(token) {
		return token, true
	}
	return "", false
}

// Resolve disambiguates a bare word against the whole vocabulary.
// Precedence: status category > priority indicator > due-date indicator,
// because status categories are the most user-specific and thus least
// ambiguous once configured. Callers fall through to keyword search on
// WordUnknown.
func (v *Vocabulary) Resolve(token string) Resolution {
	if key, ok := v.ResolveStatus(token); ok {
		return Resolution{Kind: WordStatus, Status: key}
	}
	if p := v.ResolvePriority(token); p != core.PriorityUnset {
		// Bare digits are far more likely to be free text than a
		// priority; only symbols and aliases count here.
		if _, err := strconv.Atoi(token); err != nil {
			return Resolution{Kind: WordPriority, Priority: p}
		}
	}
	if code, ok := v.ResolveDueDateKeyword(token); ok {
		return Resolution{Kind: WordDueDate, DueDate: code}
	}
	return Resolution{Kind: WordUnknown}
}

// PriorityWeight returns the scoring weight for a priority level,
// 0 for unknown levels.
func (v *Vocabulary) PriorityWeight(level int) float64 {
	if p, ok := v.priorities[level]; ok {
		return p.Weight
	}
	return 0
}

// StatusWeight returns the scoring weight for a status category key,
// 0 for unknown categories (neutral for scoring purposes).
func (v *Vocabulary) StatusWeight(key string) float64 {
	if idx, ok := v.statusByKey[strings.ToLower(key)]; ok {
		return v.statuses[idx].Weight
	}
	return 0
}

// StatusOrder returns the sort position for a status category key.
// Explicit configuration wins, then the built-in default position for known
// keys; unrecognized categories sort after every configured one.
func (v *Vocabulary) StatusOrder(key string) int {
	if idx, ok := v.statusByKey[strings.ToLower(key)]; ok {
		s := v.statuses[idx]
		if s.SortOrder != nil {
			return *s.SortOrder
		}
		if order, ok := defaultStatusOrder[s.Key]; ok {
			return order
		}
		// Configured but orderless categories keep their insertion
		// position after the built-ins.
		return len(defaultStatusOrder) + idx + 1
	}
	return v.maxOrder() + 1
}

func (v *Vocabulary) maxOrder() int {
	max := len(defaultStatusOrder)
	for _, s := range v.statuses {
		if s.SortOrder != nil && *s.SortOrder > max {
			max = *s.SortOrder
		}
	}
	return max
}

// checkSortOrders records a warning for every explicit sort-order value
// shared by two or more categories. Colliding categories tie-break by
// configuration insertion order at sort time; the condition is reported,
// not repaired.
func (v *Vocabulary) checkSortOrders() {
	byOrder := make(map[int][]string)
	for _, s := range v.statuses {
		if s.SortOrder != nil {
			byOrder[*s.SortOrder] = append(byOrder[*s.SortOrder], s.Key)
		}
	}
	orders := make([]int, 0, len(byOrder))
	for order := range byOrder {
		orders = append(orders, order)
	}
	sort.Ints(orders)
	for _, order := range orders {
		if keys := byOrder[order]; len(keys) > 1 {
			v.warnings = append(v.warnings, fmt.Sprintf(
				"status categories %s share sort order %d; falling back to configuration order",
				strings.Join(keys, ", "), order))
		}
	}
}
