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


package taskchat

import (
	"log/slog"

	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/ai/openai"
	"github.com/wenlzhang/taskchat/index"
	"github.com/wenlzhang/taskchat/index/badger"
	"github.com/wenlzhang/taskchat/ingest"
	"github.com/wenlzhang/taskchat/search"
	"github.com/wenlzhang/taskchat/vocab"
)

// Vault ties the pieces together: the badger-backed task index, the
// property vocabulary, and an optional AI provider. It is the entry point
// a host application opens once and builds searchers and loaders from.
type Vault struct {
	backend    *badger.Backend
	tasks      index.TaskRepository
	vocabulary *vocab.Vocabulary
	stop       *vocab.StopWordFilter
	provider   ai.AIProvider
	logger     *slog.Logger
}

// VaultOption configures a Vault.
type VaultOption func(*vaultOptions)

type vaultOptions struct {
	aiConfig   *ai.Config
	vocabulary *vocab.Vocabulary
	inMemory   bool
}

// WithAIConfig enables the assisted and conversational modes by
// constructing a provider from the given configuration. Without it the
// vault is local-only.
func WithAIConfig(config *ai.Config) VaultOption {
	return func(o *vaultOptions) {
		o.aiConfig = config
	}
}

// WithVocabulary replaces the built-in property vocabulary.
func WithVocabulary(vocabulary *vocab.Vocabulary) VaultOption {
	return func(o *vaultOptions) {
		o.vocabulary = vocabulary
	}
}

// WithInMemory keeps the index in memory instead of on disk. Mostly for
// tests.
func WithInMemory() VaultOption {
	return func(o *vaultOptions) {
		o.inMemory = true
	}
}

// Open opens (or creates) a vault at the given path.
func Open(filePath string, opts ...VaultOption) (*Vault, error) {
	options := &vaultOptions{
		vocabulary: vocab.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	tasks, err := badger.NewTaskRepository(backend, options.vocabulary)
	if err != nil {
		backend.Close()
		return nil, err
	}

	languages := []string{"en"}
	var provider ai.AIProvider
	if options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig, options.vocabulary)
		if err != nil {
			tasks.Close()
			backend.Close()
			return nil, err
		}
		languages = options.aiConfig.Languages
	}

	return &Vault{
		backend:    backend,
		tasks:      tasks,
		vocabulary: options.vocabulary,
		stop:       vocab.NewStopWordFilter(languages, nil),
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

// Close releases the provider and the index.
func (v *Vault) Close() error {
	if v.provider != nil {
		if err := v.provider.Close(); err != nil {
			v.logger.Error("error closing AI provider", "err", err)
		}
	}
	if err := v.tasks.Close(); err != nil {
		v.logger.Error("error closing task repository", "err", err)
		return err
	}
	if err := v.backend.Close(); err != nil {
		v.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// TaskRepository exposes the underlying task index.
func (v *Vault) TaskRepository() index.TaskRepository {
	return v.tasks
}

// Vocabulary exposes the property vocabulary the vault was opened with.
func (v *Vault) Vocabulary() *vocab.Vocabulary {
	return v.vocabulary
}

// NewSearcher builds a searcher over the vault's index. The vault's
// provider, when present, is wired in before the given options apply.
func (v *Vault) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	all := make([]search.Option, 0, len(opts)+1)
	if v.provider != nil {
		all = append(all, search.WithProvider(v.provider))
	}
	all = append(all, opts...)
	return search.NewSearcher(v.tasks, v.vocabulary, v.stop, all...)
}

// NewLoader builds a snapshot loader over the vault's index.
func (v *Vault) NewLoader(opts ...ingest.Option) (*ingest.Loader, error) {
	return ingest.NewLoader(v.tasks, opts...)
}
