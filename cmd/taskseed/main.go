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


// Seeds a task index with sample tasks for trying out the search pipeline.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wenlzhang/taskchat"
	"github.com/wenlzhang/taskchat/core"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

type seed struct {
	text     string
	status   string
	priority int
	dueIn    int // days from now; 0 means no due date unless dueToday
	dueToday bool
	folder   string
	tags     []string
}

var seeds = []seed{
	{text: "Fix login bug on the settings page", status: "open", priority: 1, dueToday: true, folder: "work/backend", tags: []string{"bug"}},
	{text: "Fix logout redirect loop", status: "inProgress", priority: 2, dueIn: 2, folder: "work/backend", tags: []string{"bug"}},
	{text: "Review quarterly report draft", status: "open", priority: 2, dueIn: -3, folder: "work/reports"},
	{text: "Write quarterly report summary", status: "open", priority: 1, dueIn: 5, folder: "work/reports"},
	{text: "Prepare slides for the team meeting", status: "open", priority: 3, dueIn: 1, folder: "work/meetings", tags: []string{"presentation"}},
	{text: "Schedule one-on-one with new hire", status: "open", dueIn: 4, folder: "work/meetings"},
	{text: "准备会议材料", status: "open", priority: 2, dueIn: 1, folder: "work/meetings"},
	{text: "Update API documentation for v2 endpoints", status: "inProgress", priority: 3, folder: "work/docs", tags: []string{"docs"}},
	{text: "Refactor payment retry logic", status: "open", priority: 2, dueIn: 14, folder: "work/backend"},
	{text: "Deploy staging environment upgrade", status: "completed", priority: 2, dueIn: -7, folder: "work/infra"},
	{text: "Investigate slow search queries", status: "open", priority: 1, dueIn: -1, folder: "work/backend", tags: []string{"performance"}},
	{text: "Cancel unused SaaS subscriptions", status: "cancelled", folder: "work/admin"},
	{text: "Renew passport before the trip", status: "open", priority: 1, dueIn: 30, folder: "personal", tags: []string{"travel"}},
	{text: "Book flights for the conference", status: "open", priority: 2, dueIn: 10, folder: "personal/travel"},
	{text: "Water the plants", status: "open", dueToday: true, folder: "personal/home"},
	{text: "Clean the garage", status: "open", priority: 4, folder: "personal/home"},
	{text: "Call the dentist about the appointment", status: "open", priority: 3, dueIn: 3, folder: "personal"},
	{text: "Read the distributed systems paper", status: "open", folder: "personal/reading", tags: []string{"reading"}},
	{text: "Draft blog post about task workflows", status: "inProgress", priority: 3, dueIn: 21, folder: "personal/writing"},
	{text: "Pay the electricity bill", status: "open", priority: 2, dueIn: -2, folder: "personal/finance", tags: []string{"bills"}},
}

func main() {
	path := "./taskchat_db"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	vault, err := taskchat.Open(path)
	if err != nil {
		panic(err)
	}
	defer vault.Close()

	loader, err := vault.NewLoader()
	if err != nil {
		panic(err)
	}
	defer loader.Release()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	tasks := make([]*core.Task, 0, len(seeds))
	for _, s := range seeds {
		task := &core.Task{
			Text:           s.text,
			StatusCategory: s.status,
			Priority:       s.priority,
			CreatedDate:    today.AddDate(0, 0, -30),
			Folder:         s.folder,
			Tags:           s.tags,
		}
		if s.dueToday {
			task.DueDate = today
		} else if s.dueIn != 0 {
			task.DueDate = today.AddDate(0, 0, s.dueIn)
		}
		tasks = append(tasks, task)
	}

	summary, err := loader.Load(context.Background(), tasks)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d tasks into %s", summary.Added, path)
	if summary.Rejected > 0 || summary.FailedBatches > 0 {
		fmt.Printf(" (%d rejected, %d failed batches)", summary.Rejected, summary.FailedBatches)
	}
	fmt.Println()
}
