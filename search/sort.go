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
	"sort"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

// Sort criterion names accepted in Settings.SortCriteria.
const (
	CriterionRelevance = "relevance"
	CriterionDueDate   = "dueDate"
	CriterionPriority  = "priority"
	CriterionStatus    = "status"
)

// SortTasks orders scored tasks by the criteria chain, applied
// left-to-right as tie-breakers. Each criterion has a fixed natural
// direction: relevance and due-date urgency rank higher values first,
// priority ranks numerically lower levels first (1 is most important,
// unset last), status follows the vocabulary's configured sort order.
// The sort is stable: tasks equal on every criterion keep their original
// relative order, so repeated runs on identical input are reproducible.
func SortTasks(tasks []core.ScoredTask, criteria []string, vocabulary *vocab.Vocabulary) {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		for _, criterion := range criteria {
			switch criterion {
			case CriterionRelevance:
				if a.Relevance != b.Relevance {
					return a.Relevance > b.Relevance
				}
			case CriterionDueDate:
				if a.DueDateScore != b.DueDateScore {
					return a.DueDateScore > b.DueDateScore
				}
			case CriterionPriority:
				pa, pb := priorityRank(a.Task), priorityRank(b.Task)
				if pa != pb {
					return pa < pb
				}
			case CriterionStatus:
				sa := vocabulary.StatusOrder(a.Task.StatusCategory)
				sb := vocabulary.StatusOrder(b.Task.StatusCategory)
				if sa != sb {
					return sa < sb
				}
			}
		}
		return false
	})
}

// priorityRank maps a task's priority to sort position: explicit levels in
// numeric order, no priority after all of them.
func priorityRank(task *core.Task) int {
	if !task.HasPriority() {
		return core.PriorityMax + 1
	}
	return task.Priority
}
