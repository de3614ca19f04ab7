// Package ingest loads task snapshots into the search index.
//
// The Loader type validates incoming tasks, splits them into batches, and
// writes the batches concurrently through a worker pool. Invalid tasks are
// logged and skipped so that one malformed entry never blocks a snapshot
// refresh.
package ingest
