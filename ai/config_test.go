package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ParserHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.RecommenderHost)
	assert.Equal(t, "qwen2.5:3b", cfg.ParserModel)
	assert.Equal(t, "qwen2.5:7b", cfg.RecommenderModel)
	assert.Equal(t, []string{"en"}, cfg.Languages)
	assert.Equal(t, 5, cfg.ExpansionsPerLanguage)
	assert.Equal(t, 10, cfg.MaxRecommendTasks)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ParserHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.RecommenderHost)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.ParserHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.RecommenderHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithParserHost("http://parse:8080/v1"),
			WithRecommenderHost("http://recommend:9090/v1"),
		)

		assert.Equal(t, "http://parse:8080/v1", cfg.ParserHost)
		assert.Equal(t, "http://recommend:9090/v1", cfg.RecommenderHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithParserModel("gpt-4o-mini"),
			WithRecommenderModel("gpt-4o"),
		)

		assert.Equal(t, "gpt-4o-mini", cfg.ParserModel)
		assert.Equal(t, "gpt-4o", cfg.RecommenderModel)
	})

	t.Run("with languages and expansions", func(t *testing.T) {
		cfg := NewConfig(
			WithLanguages("en", "zh"),
			WithExpansionsPerLanguage(3),
		)

		assert.Equal(t, []string{"en", "zh"}, cfg.Languages)
		assert.Equal(t, 3, cfg.ExpansionsPerLanguage)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"already has /v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"missing /v1", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"empty host", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ParserHost: tt.host, RecommenderHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.expected, cfg.ParserHost)
			assert.Equal(t, tt.expected, cfg.RecommenderHost)
		})
	}

	t.Run("languages lowercased", func(t *testing.T) {
		cfg := NewConfig(WithLanguages("EN", " Zh "))
		cfg.Normalize()
		assert.Equal(t, []string{"en", "zh"}, cfg.Languages)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing parser host", func(c *Config) { c.ParserHost = "" }},
		{"missing recommender host", func(c *Config) { c.RecommenderHost = "" }},
		{"missing parser model", func(c *Config) { c.ParserModel = "" }},
		{"missing recommender model", func(c *Config) { c.RecommenderModel = "" }},
		{"no languages", func(c *Config) { c.Languages = nil }},
		{"zero expansions", func(c *Config) { c.ExpansionsPerLanguage = 0 }},
		{"excessive expansions", func(c *Config) { c.ExpansionsPerLanguage = 50 }},
		{"zero recommend tasks", func(c *Config) { c.MaxRecommendTasks = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestClassifyError(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))

	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"auth", "API returned 401 Unauthorized", ErrAuthFailed},
		{"rate limit", "429 too many requests", ErrRateLimited},
		{"context length", "maximum context length exceeded", ErrContextLength},
		{"unreachable", "dial tcp: connection refused", ErrUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(errorString(tt.msg))
			assert.ErrorIs(t, classified, tt.want)
		})
	}

	t.Run("unknown error passes through", func(t *testing.T) {
		assert.Equal(t, assert.AnError, ClassifyError(assert.AnError))
	})
}

type errorString string

func (e errorString) Error() string { return string(e) }
