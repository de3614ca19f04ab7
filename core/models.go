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


package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that the same task snapshot
// always receives the same identifier across queries.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Priority sentinel values. Valid explicit priorities are 1 (highest)
// through 4 (lowest); the sentinels cover "no priority constraint",
// "any priority set" and "no priority set" query intents.
const (
	PriorityUnset = 0
	PriorityAny   = -1
	PriorityNone  = -2
	PriorityMin   = 1
	PriorityMax   = 4
)

// Due-date keyword codes recognized in filters. Relative offsets
// ("+3d", "+2w", "+1m") and explicit ISO dates ("2026-09-14") are
// also valid due-date values.
const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
	DueOverdue  = "overdue"
	DueFuture   = "future"
	DueThisWeek = "this-week"
	DueNextWeek = "next-week"
	DueAny      = "any"
	DueNone     = "none"
)

// Task is a single actionable item read from the external vault index.
// Tasks are read-only snapshots: the search pipeline never mutates them,
// it only pairs them with computed scores for the duration of one query.
type Task struct {
	Id             ID
	Text           string
	StatusCategory string    // vocabulary category key, "" when unknown
	Priority       int       // 1-4, PriorityUnset when the task has none
	DueDate        time.Time // zero when the task has no due date
	CreatedDate    time.Time
	CompletedDate  time.Time
	Tags           []string
	Folder         string
}

// HasDueDate reports whether the task carries a due date.
func (t *Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// HasPriority reports whether the task carries an explicit priority.
func (t *Task) HasPriority() bool {
	return t.Priority >= PriorityMin && t.Priority <= PriorityMax
}

// DueDateRange is a half-bounded due-date constraint, e.g. {"<=", "today"}.
type DueDateRange struct {
	Operator string // "<=", ">=", "<", ">"
	Date     string // due-date keyword code or ISO date
}

// PropertyFilter is a structured constraint pushed to the task index.
// Zero values mean "no constraint on that dimension"; an entirely empty
// filter matches every task.
type PropertyFilter struct {
	Priority     int // PriorityUnset = unconstrained
	Statuses     []string
	DueDate      string // keyword code or ISO date, "" = unconstrained
	DueDateRange *DueDateRange
	Folder       string
	Tags         []string
}

// IsEmpty reports whether the filter constrains anything at all.
func (f *PropertyFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Priority == PriorityUnset &&
		len(f.Statuses) == 0 &&
		f.DueDate == "" &&
		f.DueDateRange == nil &&
		f.Folder == "" &&
		len(f.Tags) == 0
}

// ParsedQuery is the structured result of parsing one natural-language query.
// CoreKeywords are the content-bearing terms extracted directly from the
// query; ExpandedKeywords is always a superset of CoreKeywords plus semantic
// equivalents across the configured languages.
type ParsedQuery struct {
	CoreKeywords     []string
	ExpandedKeywords []string
	NegatedKeywords  []string

	Priority     int // PriorityUnset when the query does not mention priority
	Statuses     []string
	DueDate      string
	DueDateRange *DueDateRange
	Folder       string
	Tags         []string

	IsVague bool

	// Observability only, never used for control flow.
	Confidence    float64
	Understanding string
}

// Filter returns the property-filter portion of the parsed query.
func (q *ParsedQuery) Filter() *PropertyFilter {
	return &PropertyFilter{
		Priority:     q.Priority,
		Statuses:     q.Statuses,
		DueDate:      q.DueDate,
		DueDateRange: q.DueDateRange,
		Folder:       q.Folder,
		Tags:         q.Tags,
	}
}

// HasKeywords reports whether the query carries any keywords to match.
func (q *ParsedQuery) HasKeywords() bool {
	return len(q.CoreKeywords) > 0
}

// HasProperties reports whether the query constrains any structured property.
func (q *ParsedQuery) HasProperties() bool {
	return !q.Filter().IsEmpty()
}

// ScoredTask pairs a Task with its per-component and composite scores.
// It exists only within one query's processing and is discarded after
// sorting and output.
type ScoredTask struct {
	Task *Task

	Relevance     float64 // keyword match quality
	DueDateScore  float64 // urgency component, 0 when inapplicable
	PriorityScore float64 // importance component, 0 when inapplicable
	StatusScore   float64 // workflow component, 0 when inapplicable
	Final         float64

	CoreMatched     int
	ExpandedMatched int
}
