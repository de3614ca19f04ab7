package ai

import "github.com/wenlzhang/taskchat/core"

// Usage records the token cost of a single model call.
type Usage struct {
	// PromptTokens and CompletionTokens come from the provider's usage
	// report when one is present.
	PromptTokens     int
	CompletionTokens int

	// Estimated marks counts derived from text length because the
	// provider reported no usage. Estimated counts are never summed with
	// exact ones as if they were equivalent.
	Estimated bool
}

// Add accumulates another call's usage. The sum is marked estimated if
// either side is.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		Estimated:        u.Estimated || other.Estimated,
	}
}

// Total returns prompt plus completion tokens.
func (u Usage) Total() int { return u.PromptTokens + u.CompletionTokens }

// RecommendationRequest carries everything a recommender needs: the user's
// question and the already-scored candidate tasks, best first.
type RecommendationRequest struct {
	Query string
	Tasks []core.ScoredTask

	// Vague selects the advisory prompt ("here is what to work on") over
	// the lookup prompt ("here is what matched").
	Vague bool
}

// Recommendation is a generated answer over a candidate set.
type Recommendation struct {
	// Content is the full answer text.
	Content string

	// TaskRefs holds the 1-based candidate positions the answer cites,
	// in first-mention order.
	TaskRefs []int

	// RefsSynthesized is set when the model cited no tasks and the
	// references were filled in from the top candidates instead.
	RefsSynthesized bool

	Model string
	Usage Usage
}
