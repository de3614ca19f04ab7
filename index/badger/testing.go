package badger

import (
	"github.com/wenlzhang/taskchat/index"
	"github.com/wenlzhang/taskchat/vocab"
)

// NewMemoryIndex creates an in-memory task repository for testing.
// Returns the repository and its backend; caller must close both when done.
func NewMemoryIndex(vocabulary *vocab.Vocabulary) (index.TaskRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewTaskRepository(backend, vocabulary)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
