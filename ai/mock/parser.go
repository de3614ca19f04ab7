package mock

import (
	"context"
	"strings"

	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/core"
)

// MockQueryParser is a test double for ai.QueryParser.
// It allows custom behavior injection via function fields.
type MockQueryParser struct {
	// ParseQueryFunc is called by ParseQuery if set.
	// If nil, uses default word-splitting behavior.
	ParseQueryFunc func(ctx context.Context, query string) (*ai.ParseResult, error)

	callCount int
}

// NewMockQueryParser creates a mock query parser with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockParser().
func NewMockQueryParser() *MockQueryParser {
	return &MockQueryParser{}
}

// ParseQuery parses a query with a trivial deterministic interpretation.
// Default behavior: every word becomes a core keyword, the expanded set
// equals the core set, and the query is judged specific.
func (m *MockQueryParser) ParseQuery(ctx context.Context, query string) (*ai.ParseResult, error) {
	m.callCount++

	if m.ParseQueryFunc != nil {
		return m.ParseQueryFunc(ctx, query)
	}

	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,!?;:\"'()[]{}")
		if w != "" {
			keywords = append(keywords, w)
		}
	}

	return &ai.ParseResult{
		Query: &core.ParsedQuery{
			CoreKeywords:     keywords,
			ExpandedKeywords: append([]string(nil), keywords...),
			Confidence:       1.0,
			Understanding:    "mock interpretation",
		},
		Model: "mock-parser",
		Usage: ai.Usage{PromptTokens: len(query), CompletionTokens: 10, Estimated: true},
	}, nil
}

// CallCount returns the number of times ParseQuery was called.
func (m *MockQueryParser) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockQueryParser) Reset() {
	m.callCount = 0
	m.ParseQueryFunc = nil
}
