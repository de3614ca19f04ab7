package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

var scoringToday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC) // a Monday

func newTestScorer() *Scorer {
	return NewScorer(vocab.Default(), DefaultCoefficients(), DefaultUrgencyWeights())
}

func TestScoreRelevanceCeiling(t *testing.T) {
	// A task matching every core keyword and many expansions caps at
	// exactly full-match relevance plus the core bonus.
	scorer := newTestScorer()
	q := &core.ParsedQuery{
		CoreKeywords:     []string{"fix", "bug"},
		ExpandedKeywords: []string{"fix", "bug", "repair", "fault", "error", "defect"},
	}
	task := &core.Task{Text: "fix the bug, repair the fault, error and defect alike"}

	st := scorer.Score(task, q, q.ExpandedKeywords, scoringToday)

	assert.InDelta(t, 1.2, st.Relevance, 1e-9)
	assert.InDelta(t, 24.0, st.Final, 1e-9)
}

func TestScoreUnconstrainedComponentsDoNotMoveComposite(t *testing.T) {
	// A keyword-only query scores two tasks identically on the composite
	// even when their due dates, priorities, and statuses differ wildly.
	// The component scores are still recorded for sorting.
	scorer := newTestScorer()
	q := &core.ParsedQuery{
		CoreKeywords:     []string{"report"},
		ExpandedKeywords: []string{"report"},
	}
	plain := &core.Task{Text: "write report"}
	loaded := &core.Task{
		Text:           "write report",
		Priority:       1,
		StatusCategory: "inProgress",
		DueDate:        scoringToday.AddDate(0, 0, -3),
	}

	a := scorer.Score(plain, q, q.ExpandedKeywords, scoringToday)
	b := scorer.Score(loaded, q, q.ExpandedKeywords, scoringToday)

	assert.InDelta(t, a.Final, b.Final, 1e-9)
	assert.Greater(t, b.DueDateScore, a.DueDateScore)
	assert.Greater(t, b.PriorityScore, 0.0)
	assert.Greater(t, b.StatusScore, 0.0)
}

func TestScoreKeywordMatchBeatsUrgencyMismatch(t *testing.T) {
	// On a keyword query, a matching task with no due date must outrank a
	// non-matching task that is badly overdue.
	scorer := newTestScorer()
	q := &core.ParsedQuery{
		CoreKeywords:     []string{"invoice", "client"},
		ExpandedKeywords: []string{"invoice", "client"},
	}
	match := &core.Task{Text: "send client invoice"}
	overdue := &core.Task{Text: "water the plants", DueDate: scoringToday.AddDate(0, -2, 0)}

	a := scorer.Score(match, q, q.ExpandedKeywords, scoringToday)
	b := scorer.Score(overdue, q, q.ExpandedKeywords, scoringToday)

	assert.InDelta(t, 24.0, a.Final, 1e-9)
	assert.InDelta(t, 0.0, b.Final, 1e-9)
}

func TestScoreDueDateBuckets(t *testing.T) {
	scorer := newTestScorer()
	tests := []struct {
		name string
		due  time.Time
		want float64
	}{
		{"overdue", scoringToday.AddDate(0, 0, -1), 1.5},
		{"today", scoringToday, 1.3},
		{"within week", scoringToday.AddDate(0, 0, 7), 1.0},
		{"within month", scoringToday.AddDate(0, 0, 31), 0.5},
		{"later", scoringToday.AddDate(0, 3, 0), 0.2},
		{"no due date", time.Time{}, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &core.Task{Text: "x", DueDate: tt.due}
			assert.InDelta(t, tt.want, scorer.dueDateScore(task, scoringToday), 1e-9)
		})
	}
}

func TestScoreDueDateIgnoresTimeOfDay(t *testing.T) {
	// A task due late tonight is still "today", not "tomorrow".
	scorer := newTestScorer()
	task := &core.Task{Text: "x", DueDate: scoringToday.Add(23 * time.Hour)}
	assert.InDelta(t, 1.3, scorer.dueDateScore(task, scoringToday), 1e-9)
}

func TestMaxScore(t *testing.T) {
	scorer := newTestScorer()

	keywordOnly := &core.ParsedQuery{CoreKeywords: []string{"fix"}}
	assert.InDelta(t, 24.0, scorer.MaxScore(keywordOnly), 1e-9)

	withDue := &core.ParsedQuery{CoreKeywords: []string{"fix"}, DueDate: "today"}
	assert.InDelta(t, 30.0, scorer.MaxScore(withDue), 1e-9)

	everything := &core.ParsedQuery{
		CoreKeywords: []string{"fix"},
		DueDate:      "today",
		Priority:     1,
		Statuses:     []string{"open"},
	}
	assert.InDelta(t, 32.0, scorer.MaxScore(everything), 1e-9)

	propertyOnly := &core.ParsedQuery{Priority: 1}
	assert.InDelta(t, 1.0, scorer.MaxScore(propertyOnly), 1e-9)
}
