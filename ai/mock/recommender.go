package mock

import (
	"context"
	"fmt"

	"github.com/wenlzhang/taskchat/ai"
)

// MockRecommender is a test double for ai.Recommender.
// It allows custom behavior injection via function fields.
type MockRecommender struct {
	// RecommendFunc is called by Recommend if set.
	// If nil, uses default canned-answer behavior.
	RecommendFunc func(ctx context.Context, req *ai.RecommendationRequest, stream ai.StreamFunc) (*ai.Recommendation, error)

	callCount int
}

// NewMockRecommender creates a mock recommender with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockRecommender().
func NewMockRecommender() *MockRecommender {
	return &MockRecommender{}
}

// Recommend returns a canned answer citing the first candidate task.
// When a stream callback is given, the answer is delivered through it in
// one chunk before being returned.
func (m *MockRecommender) Recommend(ctx context.Context, req *ai.RecommendationRequest, stream ai.StreamFunc) (*ai.Recommendation, error) {
	m.callCount++

	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, req, stream)
	}

	rec := &ai.Recommendation{
		Model: "mock-recommender",
		Usage: ai.Usage{PromptTokens: 20, CompletionTokens: 10, Estimated: true},
	}
	if len(req.Tasks) == 0 {
		rec.Content = "No matching tasks were found."
	} else {
		rec.Content = fmt.Sprintf("Start with [TASK_1]: %s.", req.Tasks[0].Task.Text)
		rec.TaskRefs = []int{1}
	}

	if stream != nil {
		if err := stream(ctx, []byte(rec.Content)); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// CallCount returns the number of times Recommend was called.
func (m *MockRecommender) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRecommender) Reset() {
	m.callCount = 0
	m.RecommendFunc = nil
}
