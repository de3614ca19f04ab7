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


package queryparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(vocab.Default(), vocab.NewStopWordFilter([]string{"en"}, nil))
}

func TestParse_PriorityShorthand(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("p1 fix bug")

	assert.Equal(t, 1, q.Priority)
	assert.Equal(t, []string{"fix", "bug"}, q.CoreKeywords)
	assert.Equal(t, q.CoreKeywords, q.ExpandedKeywords)
	assert.Empty(t, q.Statuses)
	assert.Empty(t, q.DueDate)
}

func TestParse_PropertyTriggers(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, q *core.ParsedQuery)
	}{
		{
			name:  "priority long form",
			query: "priority:2 review slides",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, 2, q.Priority)
				assert.Equal(t, []string{"review", "slides"}, q.CoreKeywords)
			},
		},
		{
			name:  "priority alias value",
			query: "priority:urgent deploy",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, 1, q.Priority)
			},
		},
		{
			name:  "status multi value",
			query: "s:open,inProgress report",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, []string{"open", "inProgress"}, q.Statuses)
				assert.Equal(t, []string{"report"}, q.CoreKeywords)
			},
		},
		{
			name:  "due keyword",
			query: "due:tomorrow call dentist",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, core.DueTomorrow, q.DueDate)
				assert.Equal(t, []string{"call", "dentist"}, q.CoreKeywords)
			},
		},
		{
			name:  "due short form",
			query: "d:today standup",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, core.DueToday, q.DueDate)
			},
		},
		{
			name:  "relative due offset",
			query: "ship release +3d",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, "+3d", q.DueDate)
				assert.Equal(t, []string{"ship", "release"}, q.CoreKeywords)
			},
		},
		{
			name:  "due range",
			query: "due before:2026-10-01 invoices",
			check: func(t *testing.T, q *core.ParsedQuery) {
				require.NotNil(t, q.DueDateRange)
				assert.Equal(t, "<", q.DueDateRange.Operator)
				assert.Equal(t, "2026-10-01", q.DueDateRange.Date)
				assert.Empty(t, q.DueDate)
			},
		},
		{
			name:  "due after range",
			query: "due after:+1w planning",
			check: func(t *testing.T, q *core.ParsedQuery) {
				require.NotNil(t, q.DueDateRange)
				assert.Equal(t, ">", q.DueDateRange.Operator)
				assert.Equal(t, "+1w", q.DueDateRange.Date)
			},
		},
		{
			name:  "folder and tags",
			query: "##work/projects #health #urgent-items notes",
			check: func(t *testing.T, q *core.ParsedQuery) {
				assert.Equal(t, "work/projects", q.Folder)
				assert.Equal(t, []string{"health", "urgent-items"}, q.Tags)
				assert.Equal(t, []string{"notes"}, q.CoreKeywords)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, p.Parse(tt.query))
		})
	}
}

func TestParse_BareWordDisambiguation(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("urgent overdue report")

	// "urgent" resolves as a priority indicator, "overdue" as a due-date
	// indicator; only "report" survives as a keyword.
	assert.Equal(t, 1, q.Priority)
	assert.Equal(t, core.DueOverdue, q.DueDate)
	assert.Equal(t, []string{"report"}, q.CoreKeywords)
}

func TestParse_BareStatusWord(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("completed migration")

	assert.Equal(t, []string{"completed"}, q.Statuses)
	assert.Equal(t, []string{"migration"}, q.CoreKeywords)
}

func TestParse_BareDigitsAreKeywords(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("issue 1234")

	assert.Equal(t, core.PriorityUnset, q.Priority)
	assert.Equal(t, []string{"issue", "1234"}, q.CoreKeywords)
}

func TestParse_NegatedKeywords(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("report !meeting !draft")

	assert.Equal(t, []string{"report"}, q.CoreKeywords)
	assert.Equal(t, []string{"meeting", "draft"}, q.NegatedKeywords)
}

func TestParse_BooleanOperatorsDropped(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("fix & bug | crash")

	assert.Equal(t, []string{"fix", "bug", "crash"}, q.CoreKeywords)
}

func TestParse_AllStopWordsYieldsNoKeywords(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("what should I do")

	assert.Empty(t, q.CoreKeywords)
	assert.False(t, q.HasProperties())
}

func TestParse_NeverFails(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace", "   \t  "},
		{"punctuation only", "???!!!"},
		{"unbalanced quotes", `"fix the`},
		{"stray markers", "## # : p"},
		{"cjk text", "写报告 今天"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := p.Parse(tt.query)
			require.NotNil(t, q)
			assert.Equal(t, q.CoreKeywords, q.ExpandedKeywords)
		})
	}
}

func TestParse_PunctuationKeepsLiteralKeyword(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("???")

	assert.Equal(t, []string{"???"}, q.CoreKeywords)
}

func TestParse_UnresolvableDueTriggerStaysInText(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("due:sometime report")

	assert.Empty(t, q.DueDate)
	assert.Nil(t, q.DueDateRange)
	assert.Equal(t, []string{"due:sometime", "report"}, q.CoreKeywords)

	q = p.Parse("due before:whenever report")

	assert.Nil(t, q.DueDateRange)
	assert.Contains(t, q.CoreKeywords, "report")
}

func TestParse_FirstPriorityWins(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("p2 p1 merge")

	assert.Equal(t, 2, q.Priority)
	assert.Equal(t, []string{"merge"}, q.CoreKeywords)
}

func TestParse_DuplicateKeywordsCollapse(t *testing.T) {
	p := newTestParser(t)

	q := p.Parse("bug bug fix")

	assert.Equal(t, []string{"bug", "fix"}, q.CoreKeywords)
}

func TestRatio(t *testing.T) {
	p := newTestParser(t)

	assert.InDelta(t, 1.0, p.Ratio("what should I do"), 1e-9)
	assert.Less(t, p.Ratio("fix login bug"), 0.5)
	// Property triggers are excluded from the ratio computation.
	assert.InDelta(t, 1.0, p.Ratio("p1 what should i do"), 1e-9)
}
