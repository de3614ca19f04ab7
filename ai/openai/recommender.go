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
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/wenlzhang/taskchat/ai"
)

// taskRefRe matches the bracketed task references the recommend prompts
// instruct the model to emit.
var taskRefRe = regexp.MustCompile(`\[TASK_(\d+)\]`)

// synthesizedRefs is how many top candidates stand in for the model's
// references when it cites none.
const synthesizedRefs = 3

// Recommender implements ai.Recommender using OpenAI-compatible chat APIs.
type Recommender struct {
	client   llms.Model
	model    string
	maxTasks int
	logger   *slog.Logger
}

// newRecommender is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRecommender(config *ai.Config) (*Recommender, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.RecommenderHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.RecommenderModel),
	)
	if err != nil {
		return nil, err
	}

	return &Recommender{
		client:   client,
		model:    config.RecommenderModel,
		maxTasks: config.MaxRecommendTasks,
		logger:   slog.Default().With("component", "openai-recommender"),
	}, nil
}

// NewRecommender creates a new recommender using the provided configuration.
//
// Returns ai.Recommender interface to enforce abstraction.
func NewRecommender(config *ai.Config) (ai.Recommender, error) {
	return newRecommender(config)
}

// Recommend generates an answer grounded in the request's candidate tasks.
// When stream is non-nil, chunks are forwarded as they arrive; the full
// text is accumulated and returned either way. A cancelled stream discards
// the partial recommendation.
func (r *Recommender) Recommend(ctx context.Context, req *ai.RecommendationRequest, stream ai.StreamFunc) (*ai.Recommendation, error) {
	tasks := req.Tasks
	if len(tasks) > r.maxTasks {
		tasks = tasks[:r.maxTasks]
	}

	systemPrompt := buildRecommendSystemPrompt(req.Vague)
	userPrompt := buildRecommendUserPrompt(req.Query, tasks)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	opts := []llms.CallOption{llms.WithTemperature(0.7)}
	var accumulated strings.Builder
	var mu sync.Mutex
	if stream != nil {
		opts = append(opts, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			mu.Lock()
			accumulated.Write(chunk)
			mu.Unlock()
			return stream(ctx, chunk)
		}))
	}

	response, err := r.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		r.logger.Error("failed to generate recommendation", "err", err)
		return nil, ai.ClassifyError(err)
	}
	if len(response.Choices) < 1 {
		return nil, ai.ErrMalformedResponse
	}
	choice := response.Choices[0]

	// Streamed responses may leave Content empty; the accumulator has the
	// full text in that case.
	text := choice.Content
	if text == "" {
		mu.Lock()
		text = accumulated.String()
		mu.Unlock()
	}
	text = strings.TrimSpace(text)

	rec := &ai.Recommendation{
		Content: text,
		Model:   r.model,
		Usage:   usageFromChoice(choice, systemPrompt+userPrompt, text),
	}
	rec.TaskRefs = extractTaskRefs(text, len(tasks))
	if len(rec.TaskRefs) == 0 && len(tasks) > 0 {
		n := synthesizedRefs
		if n > len(tasks) {
			n = len(tasks)
		}
		for i := 1; i <= n; i++ {
			rec.TaskRefs = append(rec.TaskRefs, i)
		}
		rec.RefsSynthesized = true
	}

	r.logger.Debug("generated recommendation",
		"tasks", len(tasks),
		"refs", len(rec.TaskRefs),
		"synthesized", rec.RefsSynthesized)
	return rec, nil
}

// extractTaskRefs returns the distinct 1-based task references cited in the
// text, in first-mention order. References outside [1, taskCount] are the
// model hallucinating and are dropped.
func extractTaskRefs(text string, taskCount int) []int {
	var refs []int
	seen := make(map[int]bool)
	for _, m := range taskRefRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > taskCount || seen[n] {
			continue
		}
		seen[n] = true
		refs = append(refs, n)
	}
	return refs
}
