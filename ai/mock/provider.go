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


package mock

import "github.com/wenlzhang/taskchat/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock parser and recommender instances.
type MockProvider struct {
	parser      *MockQueryParser
	recommender *MockRecommender
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockParser()/GetMockRecommender() to access concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		parser:      NewMockQueryParser(),
		recommender: NewMockRecommender(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(parser *MockQueryParser, recommender *MockRecommender) ai.AIProvider {
	return &MockProvider{
		parser:      parser,
		recommender: recommender,
	}
}

// QueryParser returns the mock query parser.
func (p *MockProvider) QueryParser() ai.QueryParser {
	return p.parser
}

// Recommender returns the mock recommender.
func (p *MockProvider) Recommender() ai.Recommender {
	return p.recommender
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockParser returns the underlying mock parser for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockParser() *MockQueryParser {
	return p.parser
}

// GetMockRecommender returns the underlying mock recommender for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockRecommender() *MockRecommender {
	return p.recommender
}
