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


package badger

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/index"
	"github.com/wenlzhang/taskchat/vocab"
)

// TaskRepository implements index.TaskRepository for BadgerDB.
type TaskRepository struct {
	backend *Backend
	matcher *index.Matcher
}

var _ index.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a new TaskRepository. The vocabulary drives
// due-date evaluation in filter queries; nil falls back to the defaults.
func NewTaskRepository(backend *Backend, vocabulary *vocab.Vocabulary) (*TaskRepository, error) {
	return &TaskRepository{
		backend: backend,
		matcher: index.NewMatcher(vocabulary),
	}, nil
}

// Close releases repository resources.
func (r *TaskRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *TaskRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddTasks adds one or more tasks to the index.
func (r *TaskRepository) AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error) {
	for _, task := range tasks {
		if err := core.ValidateTask(task); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, task := range tasks {
			// Content-based IDs keep re-ingestion idempotent: the same
			// task in the same folder always lands on the same key.
			if task.Id == 0 {
				task.Id = core.IDFromContent(task.Folder + "\x00" + task.Text)
			}
			if err := r.writeTask(tx, task); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return tasks, err
}

// UpdateTasks updates existing tasks.
func (r *TaskRepository) UpdateTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, task := range tasks {
			old, err := r.readTask(tx, makeTaskKey(task.Id))
			if err != nil {
				return err
			}
			if old == nil {
				return index.ErrNotFound
			}
			if err := r.dropSecondaryKeys(tx, old); err != nil {
				return err
			}
			if err := r.writeTask(tx, task); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return tasks, err
}

// DeleteTasks removes tasks by their IDs.
func (r *TaskRepository) DeleteTasks(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeTaskKey(id)
			old, err := r.readTask(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return index.ErrNotFound
			}
			if err := r.dropSecondaryKeys(tx, old); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetTask retrieves a single task by ID.
func (r *TaskRepository) GetTask(ctx context.Context, id core.ID) (*core.Task, error) {
	var task *core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		t, err := r.readTask(tx, makeTaskKey(id))
		if err != nil {
			return err
		}
		if t == nil {
			return index.ErrNotFound
		}
		task = t
		return nil
	}, false)
	return task, err
}

// GetTasks retrieves multiple tasks by their IDs.
// Missing tasks are skipped without error.
func (r *TaskRepository) GetTasks(ctx context.Context, ids ...core.ID) ([]*core.Task, error) {
	tasks := make([]*core.Task, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			t, err := r.readTask(tx, makeTaskKey(id))
			if err != nil {
				return err
			}
			if t != nil {
				tasks = append(tasks, t)
			}
		}
		return nil
	}, false)
	return tasks, err
}

// QueryTasks retrieves all tasks matching the property filter. A folder
// filter narrows the scan through the folder index, a bounded due-date
// filter through the due-date index; everything else is a filtered scan
// over the primary records.
func (r *TaskRepository) QueryTasks(ctx context.Context, filter *core.PropertyFilter, today time.Time) ([]*core.Task, error) {
	if filter != nil && filter.Folder != "" {
		return r.queryByFolder(ctx, filter, today)
	}
	if filter != nil {
		if start, end, ok := r.matcher.DueWindow(filter, today); ok {
			return r.queryByDue(ctx, filter, start, end, today)
		}
	}

	var tasks []*core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(taskRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var task *core.Task
			err := iter.Item().Value(func(val []byte) error {
				t, err := index.UnmarshalTask(val)
				task = t
				return err
			})
			if err != nil {
				return err
			}
			if r.matcher.Matches(task, filter, today) {
				tasks = append(tasks, task)
			}
		}
		return nil
	}, false)
	return tasks, err
}

// queryByFolder scans the folder index for every folder equal to or nested
// under the filter's folder, then filters the loaded tasks.
func (r *TaskRepository) queryByFolder(ctx context.Context, filter *core.PropertyFilter, today time.Time) ([]*core.Task, error) {
	var tasks []*core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTaskFolderKey(filter.Folder)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				i, err := index.UnmarshalID(val)
				id = i
				return err
			})
			if err != nil {
				return err
			}
			task, err := r.readTask(tx, makeTaskKey(id))
			if err != nil {
				return err
			}
			if task != nil && r.matcher.Matches(task, filter, today) {
				tasks = append(tasks, task)
			}
		}
		return nil
	}, false)
	return tasks, err
}

// queryByDue scans the due-date index for the window the filter's due
// constraint resolves to, then filters the loaded tasks. The scan bounds
// are padded by a day on each side so time-of-day and zone offsets in
// stored due dates cannot push a task's key outside the window; the
// matcher makes the exact call.
func (r *TaskRepository) queryByDue(ctx context.Context, filter *core.PropertyFilter, start, end time.Time, today time.Time) ([]*core.Task, error) {
	var tasks []*core.Task
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(taskDuePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		if start.IsZero() {
			iter.Rewind()
		} else {
			iter.Seek(makeTaskDueKey(start.AddDate(0, 0, -1), 0))
		}
		var stop []byte
		if !end.IsZero() {
			stop = makeTaskDueKey(end.AddDate(0, 0, 1), 0)
		}
		for ; iter.Valid(); iter.Next() {
			if stop != nil && bytes.Compare(iter.Item().Key(), stop) >= 0 {
				break
			}
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				i, err := index.UnmarshalID(val)
				id = i
				return err
			})
			if err != nil {
				return err
			}
			task, err := r.readTask(tx, makeTaskKey(id))
			if err != nil {
				return err
			}
			if task != nil && r.matcher.Matches(task, filter, today) {
				tasks = append(tasks, task)
			}
		}
		return nil
	}, false)
	return tasks, err
}

// CountTasks returns the number of tasks in the index.
func (r *TaskRepository) CountTasks(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(taskRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

func (r *TaskRepository) writeTask(tx *badger.Txn, task *core.Task) error {
	if err := tx.Set(makeTaskKey(task.Id), index.MarshalTask(task)); err != nil {
		return err
	}
	if task.HasDueDate() {
		if err := tx.Set(makeTaskDueKey(task.DueDate, task.Id), index.MarshalID(task.Id)); err != nil {
			return err
		}
	}
	if task.Folder != "" {
		if err := tx.Set(makeTaskFolderKey(task.Folder, task.Id), index.MarshalID(task.Id)); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) dropSecondaryKeys(tx *badger.Txn, task *core.Task) error {
	if task.HasDueDate() {
		if err := tx.Delete(makeTaskDueKey(task.DueDate, task.Id)); err != nil {
			return err
		}
	}
	if task.Folder != "" {
		if err := tx.Delete(makeTaskFolderKey(task.Folder, task.Id)); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) readTask(tx *badger.Txn, key []byte) (*core.Task, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var task *core.Task
	err = item.Value(func(val []byte) error {
		t, err := index.UnmarshalTask(val)
		task = t
		return err
	})
	return task, err
}
