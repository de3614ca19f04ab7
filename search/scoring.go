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
	"time"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

// Scorer computes per-task scores for a parsed query. Every component is
// computed from the task's own properties alone, with no cross-task
// normalization, so scores are stable as the candidate set changes.
type Scorer struct {
	vocabulary   *vocab.Vocabulary
	coefficients Coefficients
	urgency      UrgencyWeights
}

// NewScorer creates a scorer. A nil vocabulary falls back to the built-in
// defaults.
func NewScorer(vocabulary *vocab.Vocabulary, coefficients Coefficients, urgency UrgencyWeights) *Scorer {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	return &Scorer{vocabulary: vocabulary, coefficients: coefficients, urgency: urgency}
}

// Score computes all four component scores and the composite for one task.
// keywords is the deduplicated expanded keyword set. Components the query
// does not constrain contribute nothing to the composite: a query that
// never mentions due dates cannot have its ranking perturbed by due-date
// noise.
func (s *Scorer) Score(task *core.Task, q *core.ParsedQuery, keywords []string, today time.Time) core.ScoredTask {
	st := core.ScoredTask{Task: task}

	totalCore := len(q.CoreKeywords)
	if totalCore > 0 {
		st.CoreMatched = countMatches(task.Text, q.CoreKeywords)
		st.ExpandedMatched = countMatches(task.Text, keywords)
		st.Relevance = ratioCapped(st.CoreMatched, totalCore)*s.coefficients.CoreBonus +
			ratioCapped(st.ExpandedMatched, totalCore)
	}

	st.DueDateScore = s.dueDateScore(task, today)
	st.PriorityScore = s.vocabulary.PriorityWeight(task.Priority)
	st.StatusScore = s.vocabulary.StatusWeight(task.StatusCategory)

	relevanceActive := boolToFloat(totalCore > 0)
	dueActive := boolToFloat(q.DueDate != "" || q.DueDateRange != nil)
	priorityActive := boolToFloat(q.Priority != core.PriorityUnset)
	statusActive := boolToFloat(len(q.Statuses) > 0)

	st.Final = st.Relevance*s.coefficients.Relevance*relevanceActive +
		st.DueDateScore*s.coefficients.DueDate*dueActive +
		st.PriorityScore*s.coefficients.Priority*priorityActive +
		st.StatusScore*s.coefficients.Status*statusActive

	return st
}

// MaxScore returns the theoretical maximum composite for the query's
// active components. The quality gate threshold is a fraction of this, so
// it survives coefficient retuning.
func (s *Scorer) MaxScore(q *core.ParsedQuery) float64 {
	max := 0.0
	if len(q.CoreKeywords) > 0 {
		max += (1 + s.coefficients.CoreBonus) * s.coefficients.Relevance
	}
	if q.DueDate != "" || q.DueDateRange != nil {
		max += s.urgency.Overdue * s.coefficients.DueDate
	}
	if q.Priority != core.PriorityUnset {
		max += s.coefficients.Priority
	}
	if len(q.Statuses) > 0 {
		max += s.coefficients.Status
	}
	return max
}

func (s *Scorer) dueDateScore(task *core.Task, today time.Time) float64 {
	if !task.HasDueDate() {
		return s.urgency.None
	}
	due := time.Date(task.DueDate.Year(), task.DueDate.Month(), task.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(day).Hours() / 24)
	switch {
	case days < 0:
		return s.urgency.Overdue
	case days == 0:
		return s.urgency.Today
	case days <= 7:
		return s.urgency.Week
	case days <= 31:
		return s.urgency.Month
	default:
		return s.urgency.Later
	}
}

// ratioCapped divides matched by total, capped at 1.0. The cap keeps a
// task that matches many expansions of one core keyword from scoring past
// a perfect match: expansion exists to find matches through alternate
// phrasings, not to inflate the score with them.
func ratioCapped(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	r := float64(matched) / float64(total)
	if r > 1 {
		return 1
	}
	return r
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
