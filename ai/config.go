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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// ParserHost is the base URL for the query parsing service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	ParserHost string

	// RecommenderHost is the base URL for the recommendation service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	RecommenderHost string

	// ParserModel is the model identifier to use for query parsing.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ParserModel string

	// RecommenderModel is the model identifier to use for recommendations.
	// Example: "qwen2.5:7b", "gpt-4o"
	RecommenderModel string

	// Token is the API credential. Local OpenAI-compatible services
	// accept any non-empty value.
	Token string

	// Languages lists the languages keyword expansion should cover,
	// as lowercase codes ("en", "zh", "ru"). Default: ["en"]
	Languages []string

	// ExpansionsPerLanguage caps how many related keywords the parser may
	// generate per core keyword per language. Default: 5
	ExpansionsPerLanguage int

	// MaxRecommendTasks caps how many candidate tasks are included in a
	// recommendation prompt. Default: 10
	MaxRecommendTasks int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithParserHost sets the query parsing service host URL.
func WithParserHost(host string) ConfigOption {
	return func(c *Config) {
		c.ParserHost = host
	}
}

// WithRecommenderHost sets the recommendation service host URL.
func WithRecommenderHost(host string) ConfigOption {
	return func(c *Config) {
		c.RecommenderHost = host
	}
}

// WithHost sets both parser and recommender hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.ParserHost = host
		c.RecommenderHost = host
	}
}

// WithParserModel sets the query parsing model identifier.
func WithParserModel(model string) ConfigOption {
	return func(c *Config) {
		c.ParserModel = model
	}
}

// WithRecommenderModel sets the recommendation model identifier.
func WithRecommenderModel(model string) ConfigOption {
	return func(c *Config) {
		c.RecommenderModel = model
	}
}

// WithToken sets the API credential.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithLanguages sets the keyword expansion languages.
func WithLanguages(languages ...string) ConfigOption {
	return func(c *Config) {
		c.Languages = languages
	}
}

// WithExpansionsPerLanguage sets the expansion cap per keyword per language.
func WithExpansionsPerLanguage(n int) ConfigOption {
	return func(c *Config) {
		c.ExpansionsPerLanguage = n
	}
}

// WithMaxRecommendTasks sets the candidate cap for recommendation prompts.
func WithMaxRecommendTasks(n int) ConfigOption {
	return func(c *Config) {
		c.MaxRecommendTasks = n
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. By default, parser and recommender share a host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		ParserHost:            defaultHost,
		RecommenderHost:       defaultHost,
		ParserModel:           "qwen2.5:3b",
		RecommenderModel:      "qwen2.5:7b",
		Token:                 "none",
		Languages:             []string{"en"},
		ExpansionsPerLanguage: 5,
		MaxRecommendTasks:     10,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithLanguages("en", "zh"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize brings the configuration into canonical form: hosts get the
// /v1 suffix most OpenAI-compatible APIs (Ollama, LocalAI, vLLM) require,
// and language codes are lowercased.
func (c *Config) Normalize() {
	c.ParserHost = normalizeHost(c.ParserHost)
	c.RecommenderHost = normalizeHost(c.RecommenderHost)
	for i, lang := range c.Languages {
		c.Languages[i] = strings.ToLower(strings.TrimSpace(lang))
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.ParserHost == "" {
		return errors.New("ai config: ParserHost is required")
	}
	if c.RecommenderHost == "" {
		return errors.New("ai config: RecommenderHost is required")
	}
	if c.ParserModel == "" {
		return errors.New("ai config: ParserModel is required")
	}
	if c.RecommenderModel == "" {
		return errors.New("ai config: RecommenderModel is required")
	}
	if len(c.Languages) == 0 {
		return errors.New("ai config: at least one language is required")
	}
	if c.ExpansionsPerLanguage < 1 || c.ExpansionsPerLanguage > 20 {
		return errors.New("ai config: ExpansionsPerLanguage must be between 1 and 20")
	}
	if c.MaxRecommendTasks < 1 {
		return errors.New("ai config: MaxRecommendTasks must be positive")
	}
	return nil
}
