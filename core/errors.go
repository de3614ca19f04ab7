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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTask indicates a Task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrEmptyTaskText indicates the Text field is empty.
	ErrEmptyTaskText = errors.New("task text cannot be empty")

	// ErrInvalidPriority indicates a priority outside 1-4 and the sentinels.
	ErrInvalidPriority = errors.New("priority must be between 1 and 4")

	// ErrInvalidDueDateRange indicates a range with an unknown operator or empty date.
	ErrInvalidDueDateRange = errors.New("invalid due date range")

	// ErrConflictingDueDate indicates a filter carrying both an exact due date
	// and a due date range at the same time.
	ErrConflictingDueDate = errors.New("due date and due date range are mutually exclusive")
)
