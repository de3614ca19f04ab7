package core

import (
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "- [ ] fix the login bug #bug",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "multilingual content",
			content: "проверить отчёт 写报告",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("fix bug")
	id2 := IDFromContent("fix bugs")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestPropertyFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *PropertyFilter
		want   bool
	}{
		{
			name:   "nil filter",
			filter: nil,
			want:   true,
		},
		{
			name:   "zero filter",
			filter: &PropertyFilter{},
			want:   true,
		},
		{
			name:   "priority only",
			filter: &PropertyFilter{Priority: 1},
			want:   false,
		},
		{
			name:   "priority sentinel",
			filter: &PropertyFilter{Priority: PriorityAny},
			want:   false,
		},
		{
			name:   "due date range only",
			filter: &PropertyFilter{DueDateRange: &DueDateRange{Operator: "<=", Date: DueToday}},
			want:   false,
		},
		{
			name:   "tags only",
			filter: &PropertyFilter{Tags: []string{"work"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("PropertyFilter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_HasDueDate(t *testing.T) {
	task := Task{Text: "write report"}
	if task.HasDueDate() {
		t.Errorf("Task.HasDueDate() = true for zero due date")
	}
	task.DueDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !task.HasDueDate() {
		t.Errorf("Task.HasDueDate() = false for set due date")
	}
}

func TestParsedQuery_Filter(t *testing.T) {
	q := ParsedQuery{
		CoreKeywords: []string{"report"},
		Priority:     2,
		Statuses:     []string{"inProgress"},
		DueDate:      DueToday,
	}

	f := q.Filter()
	if f.Priority != 2 || len(f.Statuses) != 1 || f.DueDate != DueToday {
		t.Errorf("ParsedQuery.Filter() = %+v, properties not carried over", f)
	}
	if f.IsEmpty() {
		t.Errorf("ParsedQuery.Filter() reported empty for constrained query")
	}
	if !q.HasProperties() {
		t.Errorf("ParsedQuery.HasProperties() = false for constrained query")
	}
}
