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


package index

import (
	"strings"
	"time"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

// Matcher evaluates property filters against tasks. Filter criteria are
// conjunctive: a task must satisfy every set criterion. An empty filter
// matches everything.
type Matcher struct {
	vocabulary *vocab.Vocabulary
}

// NewMatcher creates a matcher over the given vocabulary.
// A nil vocabulary falls back to the built-in defaults.
func NewMatcher(vocabulary *vocab.Vocabulary) *Matcher {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	return &Matcher{vocabulary: vocabulary}
}

// DueWindow resolves the filter's due-date constraint to the half-open
// day window [start, end) it confines due dates to, for backends that
// narrow scans by due date. ok is false when the constraint leaves the
// due date unbounded.
func (m *Matcher) DueWindow(f *core.PropertyFilter, today time.Time) (start, end time.Time, ok bool) {
	return m.vocabulary.DueDateWindow(f, today)
}

// Matches reports whether the task satisfies the filter, evaluating
// due-date codes relative to today.
func (m *Matcher) Matches(task *core.Task, f *core.PropertyFilter, today time.Time) bool {
	if task == nil {
		return false
	}
	if f == nil || f.IsEmpty() {
		return true
	}

	if !matchesPriority(task, f.Priority) {
		return false
	}
	if len(f.Statuses) > 0 && !containsFold(f.Statuses, task.StatusCategory) {
		return false
	}
	if f.DueDate != "" && !m.vocabulary.MatchesDueDate(task.DueDate, f.DueDate, today) {
		return false
	}
	if f.DueDateRange != nil && !m.vocabulary.MatchesDueDateRange(task.DueDate, f.DueDateRange, today) {
		return false
	}
	if f.Folder != "" && !matchesFolder(task.Folder, f.Folder) {
		return false
	}
	for _, tag := range f.Tags {
		if !containsFold(task.Tags, tag) {
			return false
		}
	}
	return true
}

func matchesPriority(task *core.Task, want int) bool {
	switch want {
	case core.PriorityUnset:
		return true
	case core.PriorityAny:
		return task.HasPriority()
	case core.PriorityNone:
		return !task.HasPriority()
	default:
		return task.Priority == want
	}
}

// matchesFolder matches a folder filter against a task's folder path.
// The filter matches the folder itself and everything nested under it.
func matchesFolder(folder, want string) bool {
	folder = strings.Trim(folder, "/")
	want = strings.Trim(want, "/")
	if strings.EqualFold(folder, want) {
		return true
	}
	return len(folder) > len(want) && strings.EqualFold(folder[:len(want)], want) && folder[len(want)] == '/'
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
