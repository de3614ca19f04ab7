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


package openai

import (
	"log/slog"

	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/vocab"
)

// Provider implements ai.AIProvider using OpenAI-compatible services.
// It manages query parser and recommender instances.
type Provider struct {
	config      *ai.Config
	parser      *QueryParser
	recommender *Recommender
	logger      *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use. The vocabulary is
// embedded in the parser's prompt so the model only emits configured
// status keys.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config, vocabulary *vocab.Vocabulary) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	parser, err := newQueryParser(config, vocabulary)
	if err != nil {
		return nil, err
	}

	recommender, err := newRecommender(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:      config,
		parser:      parser,
		recommender: recommender,
		logger:      slog.Default().With("component", "openai-provider"),
	}, nil
}

// QueryParser returns the query parsing service.
func (p *Provider) QueryParser() ai.QueryParser {
	return p.parser
}

// Recommender returns the recommendation service.
func (p *Provider) Recommender() ai.Recommender {
	return p.recommender
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
