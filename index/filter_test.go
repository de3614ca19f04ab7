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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wenlzhang/taskchat/core"
)

var matcherToday = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC) // a Monday

func day(offset int) time.Time {
	return matcherToday.AddDate(0, 0, offset)
}

func TestMatcher_EmptyFilterMatchesEverything(t *testing.T) {
	m := NewMatcher(nil)

	tasks := []*core.Task{
		{Text: "plain task", StatusCategory: "open"},
		{Text: "done task", StatusCategory: "completed", Priority: 1, DueDate: day(-3)},
		{Text: "no status"},
	}

	for _, task := range tasks {
		assert.True(t, m.Matches(task, nil, matcherToday), "nil filter: %s", task.Text)
		assert.True(t, m.Matches(task, &core.PropertyFilter{}, matcherToday), "empty filter: %s", task.Text)
	}
}

func TestMatcher_Priority(t *testing.T) {
	m := NewMatcher(nil)

	withPriority := &core.Task{Text: "a", Priority: 2}
	withoutPriority := &core.Task{Text: "b"}

	tests := []struct {
		name        string
		priority    int
		matchesWith bool
		matchesSans bool
	}{
		{"exact level", 2, true, false},
		{"other level", 1, false, false},
		{"any", core.PriorityAny, true, false},
		{"none", core.PriorityNone, false, true},
		{"unset", core.PriorityUnset, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &core.PropertyFilter{Priority: tt.priority}
			assert.Equal(t, tt.matchesWith, m.Matches(withPriority, f, matcherToday))
			assert.Equal(t, tt.matchesSans, m.Matches(withoutPriority, f, matcherToday))
		})
	}
}

func TestMatcher_Statuses(t *testing.T) {
	m := NewMatcher(nil)

	task := &core.Task{Text: "a", StatusCategory: "inProgress"}

	assert.True(t, m.Matches(task, &core.PropertyFilter{Statuses: []string{"open", "inProgress"}}, matcherToday))
	assert.True(t, m.Matches(task, &core.PropertyFilter{Statuses: []string{"inprogress"}}, matcherToday))
	assert.False(t, m.Matches(task, &core.PropertyFilter{Statuses: []string{"completed"}}, matcherToday))
}

func TestMatcher_DueDate(t *testing.T) {
	m := NewMatcher(nil)

	dueToday := &core.Task{Text: "a", DueDate: matcherToday}
	overdue := &core.Task{Text: "b", DueDate: day(-2)}
	noDue := &core.Task{Text: "c"}

	today := &core.PropertyFilter{DueDate: core.DueToday}
	assert.True(t, m.Matches(dueToday, today, matcherToday))
	assert.False(t, m.Matches(overdue, today, matcherToday))
	assert.False(t, m.Matches(noDue, today, matcherToday))

	upToToday := &core.PropertyFilter{DueDateRange: &core.DueDateRange{Operator: "<=", Date: core.DueToday}}
	assert.True(t, m.Matches(dueToday, upToToday, matcherToday))
	assert.True(t, m.Matches(overdue, upToToday, matcherToday))
	assert.False(t, m.Matches(noDue, upToToday, matcherToday))

	none := &core.PropertyFilter{DueDate: core.DueNone}
	assert.False(t, m.Matches(dueToday, none, matcherToday))
	assert.True(t, m.Matches(noDue, none, matcherToday))
}

func TestMatcher_Folder(t *testing.T) {
	m := NewMatcher(nil)

	task := &core.Task{Text: "a", Folder: "work/projects/alpha"}

	tests := []struct {
		folder string
		want   bool
	}{
		{"work", true},
		{"work/projects", true},
		{"work/projects/alpha", true},
		{"work/proj", false},
		{"personal", false},
	}

	for _, tt := range tests {
		f := &core.PropertyFilter{Folder: tt.folder}
		assert.Equal(t, tt.want, m.Matches(task, f, matcherToday), "folder %q", tt.folder)
	}
}

func TestMatcher_TagsAreConjunctive(t *testing.T) {
	m := NewMatcher(nil)

	task := &core.Task{Text: "a", Tags: []string{"health", "urgent"}}

	assert.True(t, m.Matches(task, &core.PropertyFilter{Tags: []string{"health"}}, matcherToday))
	assert.True(t, m.Matches(task, &core.PropertyFilter{Tags: []string{"health", "urgent"}}, matcherToday))
	assert.False(t, m.Matches(task, &core.PropertyFilter{Tags: []string{"health", "work"}}, matcherToday))
}

func TestMatcher_CombinedCriteria(t *testing.T) {
	m := NewMatcher(nil)

	task := &core.Task{
		Text:           "ship release",
		StatusCategory: "open",
		Priority:       1,
		DueDate:        matcherToday,
		Folder:         "work",
	}

	full := &core.PropertyFilter{
		Priority: 1,
		Statuses: []string{"open"},
		DueDate:  core.DueToday,
		Folder:   "work",
	}
	assert.True(t, m.Matches(task, full, matcherToday))

	full.Priority = 2
	assert.False(t, m.Matches(task, full, matcherToday))
}
