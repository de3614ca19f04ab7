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
	"regexp"

	"github.com/wenlzhang/taskchat/core"
)

// dayCodeRe matches due-date codes that denote a single concrete day:
// "today", "tomorrow", relative offsets, and ISO dates. Window codes like
// "this-week" and filter codes like "overdue" already express a span and
// are left alone.
var dayCodeRe = regexp.MustCompile(`^(today|tomorrow|\+\d+[dwm]|\d{4}-\d{2}-\d{2})$`)

// ResolveTimeContext widens a vague query's due-date filter. "What can I
// do today" asks for everything actionable by today, not tasks due exactly
// today, so for vague queries an exact day filter becomes an inclusive
// upper bound: overdue tasks and today's tasks both qualify.
//
// Specific queries are untouched: "show tasks due today" means exactly
// today.
func ResolveTimeContext(q *core.ParsedQuery) {
	if q == nil || !q.IsVague {
		return
	}
	if q.DueDate == "" || q.DueDateRange != nil {
		return
	}
	if !dayCodeRe.MatchString(q.DueDate) {
		return
	}
	q.DueDateRange = &core.DueDateRange{Operator: "<=", Date: q.DueDate}
	q.DueDate = ""
}
