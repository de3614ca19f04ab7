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

// Built-in fallback vocabulary. Used whole when no configuration is
// provided, and per category when a configured category is malformed,
// so that a broken settings file never blocks a query.

var defaultPriorities = map[int]PriorityLevel{
	1: {Symbols: []string{"🔺"}, Aliases: []string{"highest", "urgent", "critical", "asap"}, Weight: 1.0},
	2: {Symbols: []string{"⏫"}, Aliases: []string{"high"}, Weight: 0.75},
	3: {Symbols: []string{"🔼"}, Aliases: []string{"medium", "normal"}, Weight: 0.5},
	4: {Symbols: []string{"🔽", "⏬"}, Aliases: []string{"low", "minor"}, Weight: 0.2},
}

var defaultStatuses = []StatusCategory{
	{
		Key:         "open",
		Symbols:     []string{" "},
		DisplayName: "Open",
		Aliases:     []string{"todo", "to-do", "pending", "unstarted"},
		Weight:      0.8,
		Description: "not started yet",
	},
	{
		Key:         "inProgress",
		Symbols:     []string{"/"},
		DisplayName: "In progress",
		Aliases:     []string{"in-progress", "doing", "started", "ongoing", "wip"},
		Weight:      1.0,
		Description: "actively being worked on",
	},
	{
		Key:         "completed",
		Symbols:     []string{"x", "X"},
		DisplayName: "Completed",
		Aliases:     []string{"done", "finished", "complete", "closed"},
		Weight:      0.2,
		Description: "finished",
	},
	{
		Key:         "cancelled",
		Symbols:     []string{"-"},
		DisplayName: "Cancelled",
		Aliases:     []string{"canceled", "dropped", "abandoned", "wontdo"},
		Weight:      0.0,
		Description: "will not be done",
	},
}

// defaultStatusOrder gives sort positions for the built-in categories:
// active work first, terminal states last.
var defaultStatusOrder = map[string]int{
	"inProgress": 1,
	"open":       2,
	"completed":  3,
	"cancelled":  4,
}

var defaultDueDateAliases = map[string][]string{
	"today":     {"today", "tod"},
	"tomorrow":  {"tomorrow", "tom", "tmr"},
	"overdue":   {"overdue", "late", "expired"},
	"future":    {"future", "upcoming", "later"},
	"this-week": {"this-week", "thisweek", "week"},
	"next-week": {"next-week", "nextweek"},
	"any":       {"any"},
	"none":      {"none", "no-date", "nodate"},
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, _ := New(nil)
	return v
}
