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
	"regexp"
	"strconv"
	"time"

	"github.com/wenlzhang/taskchat/core"
)

var relativeDateRe = regexp.MustCompile(`^\+(\d+)([dwm])$`)

const isoDateLayout = "2006-01-02"

// MatchesDueDate evaluates a due-date keyword code against a task's due date.
// today/tomorrow and explicit dates are exact-date equality; overdue is
// strictly before today; future is strictly after today; this-week and
// next-week are inclusive calendar weeks starting Monday; "any" matches any
// task with a due date and "none" matches tasks without one.
func (v *Vocabulary) MatchesDueDate(due time.Time, code string, today time.Time) bool {
	hasDue := !due.IsZero()
	switch code {
	case core.DueAny:
		return hasDue
	case core.DueNone:
		return !hasDue
	}
	if !hasDue {
		return false
	}

	d := truncateDay(due)
	t := truncateDay(today)

	switch code {
	case core.DueToday:
		return d.Equal(t)
	case core.DueTomorrow:
		return d.Equal(t.AddDate(0, 0, 1))
	case core.DueOverdue:
		return d.Before(t)
	case core.DueFuture:
		return d.After(t)
	case core.DueThisWeek:
		start := startOfWeek(t)
		return !d.Before(start) && d.Before(start.AddDate(0, 0, 7))
	case core.DueNextWeek:
		start := startOfWeek(t).AddDate(0, 0, 7)
		return !d.Before(start) && d.Before(start.AddDate(0, 0, 7))
	}

	if target, ok := resolveDateCode(code, t); ok {
		return d.Equal(target)
	}
	return false
}

// MatchesDueDateRange evaluates a half-bounded range against a task's due
// date. The range bound must resolve to a concrete date; tasks without a
// due date never match a range.
func (v *Vocabulary) MatchesDueDateRange(due time.Time, r *core.DueDateRange, today time.Time) bool {
	if r == nil {
		return true
	}
	if due.IsZero() {
		return false
	}
	bound, ok := resolveDateCode(r.Date, truncateDay(today))
	if !ok {
		return false
	}
	d := truncateDay(due)
	switch r.Operator {
	case "<=":
		return !d.After(bound)
	case ">=":
		return !d.Before(bound)
	case "<":
		return d.Before(bound)
	case ">":
		return d.After(bound)
	}
	return false
}

// DueDateWindow resolves a filter's due-date constraint to the half-open
// day window [start, end) it confines due dates to. A zero start or end
// leaves that side unbounded. ok is false when the constraint does not
// bound the due date (absent, "any", "none", or unresolvable), in which
// case callers cannot narrow a scan by due date.
func (v *Vocabulary) DueDateWindow(f *core.PropertyFilter, today time.Time) (start, end time.Time, ok bool) {
	if f == nil {
		return time.Time{}, time.Time{}, false
	}
	t := truncateDay(today)

	if r := f.DueDateRange; r != nil {
		bound, resolved := resolveDateCode(r.Date, t)
		if !resolved {
			return time.Time{}, time.Time{}, false
		}
		switch r.Operator {
		case "<=":
			return time.Time{}, bound.AddDate(0, 0, 1), true
		case ">=":
			return bound, time.Time{}, true
		case "<":
			return time.Time{}, bound, true
		case ">":
			return bound.AddDate(0, 0, 1), time.Time{}, true
		}
		return time.Time{}, time.Time{}, false
	}

	switch f.DueDate {
	case "", core.DueAny, core.DueNone:
		return time.Time{}, time.Time{}, false
	case core.DueOverdue:
		return time.Time{}, t, true
	case core.DueFuture:
		return t.AddDate(0, 0, 1), time.Time{}, true
	case core.DueThisWeek:
		s := startOfWeek(t)
		return s, s.AddDate(0, 0, 7), true
	case core.DueNextWeek:
		s := startOfWeek(t).AddDate(0, 0, 7)
		return s, s.AddDate(0, 0, 7), true
	}
	if d, resolved := resolveDateCode(f.DueDate, t); resolved {
		return d, d.AddDate(0, 0, 1), true
	}
	return time.Time{}, time.Time{}, false
}

// resolveDateCode resolves a keyword, relative offset, or ISO date to a
// concrete day. Keywords without a single concrete day (overdue, future,
// weeks, sentinels) do not resolve.
func resolveDateCode(code string, today time.Time) (time.Time, bool) {
	switch code {
	case core.DueToday:
		return today, true
	case core.DueTomorrow:
		return today.AddDate(0, 0, 1), true
	}
	if m := relativeDateRe.FindStringSubmatch(code); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		switch m[2] {
		case "d":
			return today.AddDate(0, 0, n), true
		case "w":
			return today.AddDate(0, 0, 7*n), true
		case "m":
			return today.AddDate(0, n, 0), true
		}
	}
	if t, err := time.ParseInLocation(isoDateLayout, code, today.Location()); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isRelativeDate(token string) bool {
	return relativeDateRe.MatchString(token)
}

func isISODate(token string) bool {
	_, err := time.Parse(isoDateLayout, token)
	return err == nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's calendar week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, 1-weekday)
}
