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


package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/index"
)

const defaultBatchSize = 64

// Loader writes task snapshots into the index in concurrent batches. The
// host application hands over its full task list (or a delta) and the
// loader validates, batches, and persists it through a worker pool.
type Loader struct {
	tasks     index.TaskRepository
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
	released  bool
	mu        sync.Mutex
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		if l.pool != nil {
			l.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets how many tasks go into one index write.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader over the given task repository.
func NewLoader(tasks index.TaskRepository, opts ...Option) (*Loader, error) {
	if tasks == nil {
		return nil, ErrTaskRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		tasks:     tasks,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.Release()
			return nil, err
		}
	}

	return l, nil
}

// Summary reports what one Load call did.
type Summary struct {
	// Added counts tasks written to the index.
	Added int

	// Rejected counts tasks that failed validation and were skipped.
	Rejected int

	// FailedBatches counts batches whose index write failed. The tasks in
	// a failed batch are neither Added nor Rejected.
	FailedBatches int
}

// Load validates the tasks and writes them to the index in concurrent
// batches. Invalid tasks are logged and skipped rather than failing the
// whole load; a write failure loses only its own batch. Load blocks until
// every batch has been attempted.
func (l *Loader) Load(ctx context.Context, tasks []*core.Task) (*Summary, error) {
	l.mu.Lock()
	if l.released {
		l.mu.Unlock()
		return nil, ErrLoaderReleased
	}
	l.mu.Unlock()

	summary := &Summary{}
	valid := make([]*core.Task, 0, len(tasks))
	for _, task := range tasks {
		if err := core.ValidateTask(task); err != nil {
			l.logger.Warn("skipping invalid task", "err", err)
			summary.Rejected++
			continue
		}
		valid = append(valid, task)
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for start := 0; start < len(valid); start += l.batchSize {
		end := start + l.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()
			added, err := l.tasks.AddTasks(ctx, batch...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.logger.Error("error writing task batch", "batchSize", len(batch), "err", err)
				summary.FailedBatches++
				return
			}
			summary.Added += len(added)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			summary.FailedBatches++
			mu.Unlock()
			l.logger.Error("error submitting task batch", "err", submitErr)
		}
	}
	wg.Wait()

	return summary, nil
}

// Release releases the worker pool. The loader should not be used after
// calling Release.
func (l *Loader) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return
	}
	l.released = true
	if l.pool != nil {
		l.pool.Release()
	}
}
