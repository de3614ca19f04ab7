package index

import (
	"context"
	"time"

	"github.com/wenlzhang/taskchat/core"
)

// TaskRepository provides operations for managing the task index.
// Implementations must be thread-safe and support concurrent access.
type TaskRepository interface {
	// AddTasks adds one or more tasks to the index.
	// Tasks with ID=0 get content-based IDs derived from folder and text.
	// Sets InsertedAt-equivalent bookkeeping where applicable.
	// Returns the tasks with IDs populated.
	AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error)

	// UpdateTasks updates existing tasks.
	// Returns ErrNotFound if any task doesn't exist.
	UpdateTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error)

	// DeleteTasks removes tasks by their IDs.
	// Also removes associated secondary index entries.
	// Returns ErrNotFound if any task doesn't exist.
	DeleteTasks(ctx context.Context, ids ...core.ID) error

	// GetTask retrieves a single task by ID.
	// Returns ErrNotFound if the task doesn't exist.
	GetTask(ctx context.Context, id core.ID) (*core.Task, error)

	// GetTasks retrieves multiple tasks by their IDs.
	// Returns only the tasks that exist (no error for missing tasks).
	GetTasks(ctx context.Context, ids ...core.ID) ([]*core.Task, error)

	// QueryTasks retrieves all tasks matching the property filter.
	// A nil or empty filter matches every task in the index. Due-date
	// codes are evaluated relative to today.
	QueryTasks(ctx context.Context, filter *core.PropertyFilter, today time.Time) ([]*core.Task, error)

	// CountTasks returns the number of tasks in the index.
	CountTasks(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the index and releases resources.
	Close() error
}
