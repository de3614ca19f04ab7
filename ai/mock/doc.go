// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.QueryParser,
// ai.Recommender, and ai.AIProvider for use in unit tests. The mocks allow
// tests to run without a model server and enable controlled, deterministic
// behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	result, err := mockProvider.QueryParser().ParseQuery(ctx, "fix bug")
//
//	// Custom behavior injection
//	parser := mock.NewMockQueryParser()
//	parser.ParseQueryFunc = func(ctx context.Context, query string) (*ai.ParseResult, error) {
//	    return nil, ai.ErrUnreachable
//	}
//
//	// Check call counts
//	count := parser.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockQueryParser: Splits the query into words and uses them as keywords
//   - MockRecommender: Returns a canned answer citing the first candidate
//   - MockProvider: Aggregates mock parser and recommender
package mock
