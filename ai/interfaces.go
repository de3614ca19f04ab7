package ai

import (
	"context"

	"github.com/wenlzhang/taskchat/core"
)

// QueryParser turns a natural-language task query into a structured query
// using a language model. Implementations must be thread-safe for
// concurrent use.
type QueryParser interface {
	// ParseQuery analyzes a query and returns the structured interpretation
	// together with the model identity and token usage of the call.
	// Returns an error if the model is unreachable or keeps producing
	// malformed output; callers are expected to fall back to deterministic
	// parsing in that case.
	ParseQuery(ctx context.Context, query string) (*ParseResult, error)
}

// StreamFunc receives response chunks as a recommendation is generated.
// Returning an error cancels the generation.
type StreamFunc func(ctx context.Context, chunk []byte) error

// Recommender produces a conversational answer over a set of scored tasks.
// Implementations must be thread-safe for concurrent use.
type Recommender interface {
	// Recommend generates an answer for the query grounded in the given
	// tasks. When stream is non-nil it is invoked with chunks as they
	// arrive; the complete recommendation is returned either way.
	Recommend(ctx context.Context, req *RecommendationRequest, stream StreamFunc) (*Recommendation, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages QueryParser and
// Recommender instances, ensuring they share configuration.
type AIProvider interface {
	// QueryParser returns the query parsing service.
	// The returned QueryParser is safe for concurrent use.
	QueryParser() QueryParser

	// Recommender returns the recommendation service.
	// The returned Recommender is safe for concurrent use.
	Recommender() Recommender

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}

// ParseResult is a structured query plus the metadata of the model call
// that produced it.
type ParseResult struct {
	Query *core.ParsedQuery
	Model string
	Usage Usage
}
