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

import "fmt"

// ValidateTask validates a Task according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Priority must be 1-4 or PriorityUnset
//
// NOT validated (owned by the external index):
//   - StatusCategory (unknown categories are treated as unclassified downstream)
//   - Dates (the index may legitimately hold overdue or far-future tasks)
//   - ID (0 is valid until a content ID is assigned)
func ValidateTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}

	if task.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyTaskText)
	}

	if task.Priority != PriorityUnset && !task.HasPriority() {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidTask, ErrInvalidPriority, task.Priority)
	}

	return nil
}

// ValidateDueDateRange validates a DueDateRange.
func ValidateDueDateRange(r *DueDateRange) error {
	if r == nil {
		return nil
	}
	switch r.Operator {
	case "<=", ">=", "<", ">":
	default:
		return fmt.Errorf("%w: operator %q", ErrInvalidDueDateRange, r.Operator)
	}
	if r.Date == "" {
		return fmt.Errorf("%w: empty date", ErrInvalidDueDateRange)
	}
	return nil
}

// ValidateFilter validates a PropertyFilter.
//
// Validation rules:
//   - Priority must be 1-4, a sentinel, or PriorityUnset
//   - DueDate and DueDateRange must not both be set
//   - DueDateRange, if set, must be well-formed
func ValidateFilter(f *PropertyFilter) error {
	if f == nil {
		return nil
	}

	switch {
	case f.Priority == PriorityUnset, f.Priority == PriorityAny, f.Priority == PriorityNone:
	case f.Priority >= PriorityMin && f.Priority <= PriorityMax:
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidPriority, f.Priority)
	}

	if f.DueDate != "" && f.DueDateRange != nil {
		return ErrConflictingDueDate
	}

	return ValidateDueDateRange(f.DueDateRange)
}
