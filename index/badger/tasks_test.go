package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/index"
)

func TestTaskBasics(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	task := &core.Task{
		Text:           "Write quarterly report",
		StatusCategory: "open",
		Priority:       2,
		Folder:         "work",
	}

	added, err := repo.AddTasks(ctx, task)
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := repo.GetTask(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}

	if retrieved.Text != "Write quarterly report" {
		t.Fatalf("Expected 'Write quarterly report', got '%s'", retrieved.Text)
	}
	if retrieved.Priority != 2 {
		t.Fatalf("Expected priority 2, got %d", retrieved.Priority)
	}
}

func TestTaskContentIDsAreStable(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	first, err := repo.AddTasks(ctx, &core.Task{Text: "Buy groceries", Folder: "personal"})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	second, err := repo.AddTasks(ctx, &core.Task{Text: "Buy groceries", Folder: "personal"})
	if err != nil {
		t.Fatalf("Failed to re-add task: %v", err)
	}

	if first[0].Id != second[0].Id {
		t.Fatalf("Expected stable ID, got %d and %d", first[0].Id, second[0].Id)
	}

	count, err := repo.CountTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 task after idempotent re-add, got %d", count)
	}

	other, err := repo.AddTasks(ctx, &core.Task{Text: "Buy groceries", Folder: "work"})
	if err != nil {
		t.Fatalf("Failed to add task in other folder: %v", err)
	}
	if other[0].Id == first[0].Id {
		t.Fatal("Expected different folder to produce a different ID")
	}
}

func TestTaskQueryEmptyFilterReturnsEverything(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	tasks := []*core.Task{
		{Text: "Task A", StatusCategory: "open"},
		{Text: "Task B", StatusCategory: "completed", Priority: 1},
		{Text: "Task C", StatusCategory: "inProgress", DueDate: now},
	}
	if _, err := repo.AddTasks(ctx, tasks...); err != nil {
		t.Fatalf("Failed to add tasks: %v", err)
	}

	all, err := repo.QueryTasks(ctx, nil, now)
	if err != nil {
		t.Fatalf("Failed to query with nil filter: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(all))
	}

	all, err = repo.QueryTasks(ctx, &core.PropertyFilter{}, now)
	if err != nil {
		t.Fatalf("Failed to query with empty filter: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 tasks with empty filter, got %d", len(all))
	}
}

func TestTaskQueryByProperties(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	today := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	tasks := []*core.Task{
		{Text: "Fix login bug", StatusCategory: "open", Priority: 1, DueDate: today},
		{Text: "Update docs", StatusCategory: "open", Priority: 3},
		{Text: "Old cleanup", StatusCategory: "completed", Priority: 1, DueDate: today.AddDate(0, 0, -10)},
	}
	if _, err := repo.AddTasks(ctx, tasks...); err != nil {
		t.Fatalf("Failed to add tasks: %v", err)
	}

	p1, err := repo.QueryTasks(ctx, &core.PropertyFilter{Priority: 1, Statuses: []string{"open"}}, today)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(p1) != 1 || p1[0].Text != "Fix login bug" {
		t.Fatalf("Expected only the open p1 task, got %d results", len(p1))
	}

	due, err := repo.QueryTasks(ctx, &core.PropertyFilter{DueDate: core.DueToday}, today)
	if err != nil {
		t.Fatalf("Failed to query by due date: %v", err)
	}
	if len(due) != 1 || due[0].Text != "Fix login bug" {
		t.Fatalf("Expected only the task due today, got %d results", len(due))
	}
}

func TestTaskQueryByFolder(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	tasks := []*core.Task{
		{Text: "Alpha review", Folder: "work/projects"},
		{Text: "Beta review", Folder: "work"},
		{Text: "Workshop prep", Folder: "workshop"},
		{Text: "Groceries", Folder: "personal"},
	}
	if _, err := repo.AddTasks(ctx, tasks...); err != nil {
		t.Fatalf("Failed to add tasks: %v", err)
	}

	work, err := repo.QueryTasks(ctx, &core.PropertyFilter{Folder: "work"}, now)
	if err != nil {
		t.Fatalf("Failed to query by folder: %v", err)
	}
	if len(work) != 2 {
		t.Fatalf("Expected 2 tasks under work/, got %d", len(work))
	}
	for _, task := range work {
		if task.Folder == "workshop" || task.Folder == "personal" {
			t.Fatalf("Folder query leaked task from %q", task.Folder)
		}
	}
}

func TestTaskQueryByFolderIgnoresCase(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := repo.AddTasks(ctx, &core.Task{Text: "Meeting notes", Folder: "Work/notes"}); err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	for _, folder := range []string{"work", "Work", "WORK/NOTES"} {
		got, err := repo.QueryTasks(ctx, &core.PropertyFilter{Folder: folder}, now)
		if err != nil {
			t.Fatalf("Failed to query folder %q: %v", folder, err)
		}
		if len(got) != 1 {
			t.Fatalf("Expected 1 task for folder %q, got %d", folder, len(got))
		}
	}
}

func TestTaskQueryByDueWindow(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	today := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	tasks := []*core.Task{
		{Text: "Pay invoice", StatusCategory: "open", DueDate: today.AddDate(0, 0, -3)},
		{Text: "Ship release", StatusCategory: "open", DueDate: today},
		{Text: "Plan offsite", StatusCategory: "open", DueDate: today.AddDate(0, 0, 10)},
		{Text: "Read backlog", StatusCategory: "open"},
	}
	if _, err := repo.AddTasks(ctx, tasks...); err != nil {
		t.Fatalf("Failed to add tasks: %v", err)
	}

	overdue, err := repo.QueryTasks(ctx, &core.PropertyFilter{DueDate: core.DueOverdue}, today)
	if err != nil {
		t.Fatalf("Failed to query overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].Text != "Pay invoice" {
		t.Fatalf("Expected only the overdue task, got %d results", len(overdue))
	}

	upTo, err := repo.QueryTasks(ctx, &core.PropertyFilter{
		DueDateRange: &core.DueDateRange{Operator: "<=", Date: core.DueToday},
	}, today)
	if err != nil {
		t.Fatalf("Failed to query due range: %v", err)
	}
	if len(upTo) != 2 {
		t.Fatalf("Expected 2 tasks due up to today, got %d", len(upTo))
	}

	none, err := repo.QueryTasks(ctx, &core.PropertyFilter{DueDate: core.DueNone}, today)
	if err != nil {
		t.Fatalf("Failed to query undated: %v", err)
	}
	if len(none) != 1 || none[0].Text != "Read backlog" {
		t.Fatalf("Expected only the undated task, got %d results", len(none))
	}
}

func TestTaskUpdateAndDelete(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	added, err := repo.AddTasks(ctx, &core.Task{Text: "Draft proposal", StatusCategory: "open", DueDate: now})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}
	task := added[0]

	task.StatusCategory = "completed"
	task.CompletedDate = now
	if _, err := repo.UpdateTasks(ctx, task); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	retrieved, err := repo.GetTask(ctx, task.Id)
	if err != nil {
		t.Fatalf("Failed to get updated task: %v", err)
	}
	if retrieved.StatusCategory != "completed" {
		t.Fatalf("Expected completed status, got %q", retrieved.StatusCategory)
	}

	if err := repo.DeleteTasks(ctx, task.Id); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	if _, err := repo.GetTask(ctx, task.Id); !errors.Is(err, index.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.DeleteTasks(ctx, task.Id); !errors.Is(err, index.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound deleting missing task, got %v", err)
	}
}

func TestTaskGetMissingSkipped(t *testing.T) {
	repo, backend, err := NewMemoryIndex(nil)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := repo.AddTasks(ctx, &core.Task{Text: "Only task"})
	if err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	tasks, err := repo.GetTasks(ctx, added[0].Id, core.ID(999999))
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, missing IDs should be skipped, got %d", len(tasks))
	}
}
