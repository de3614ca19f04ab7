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
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

// maxQueryRunes caps the query text sent to the model. Task queries are
// short; anything longer is pasted content, not a query.
const maxQueryRunes = 2000

// QueryParser implements ai.QueryParser using OpenAI-compatible chat APIs.
type QueryParser struct {
	client     llms.Model
	model      string
	vocabulary *vocab.Vocabulary
	languages  []string
	expansions int
	logger     *slog.Logger
}

// dueRangeResponse matches the due_range object in the model's JSON output.
type dueRangeResponse struct {
	Operator string `json:"operator"`
	Date     string `json:"date"`
}

// parseResponse matches the JSON structure the parse prompt demands.
type parseResponse struct {
	CoreKeywords     []string          `json:"core_keywords"`
	ExpandedKeywords []string          `json:"expanded_keywords"`
	NegatedKeywords  []string          `json:"negated_keywords"`
	Priority         int               `json:"priority"`
	Statuses         []string          `json:"statuses"`
	DueDate          string            `json:"due_date"`
	DueRange         *dueRangeResponse `json:"due_range"`
	Folder           string            `json:"folder"`
	Tags             []string          `json:"tags"`
	IsVague          bool              `json:"is_vague"`
	Confidence       float64           `json:"confidence"`
	Understanding    string            `json:"understanding"`
}

// newQueryParser is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newQueryParser(config *ai.Config, vocabulary *vocab.Vocabulary) (*QueryParser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ParserHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ParserModel),
	)
	if err != nil {
		return nil, err
	}

	return &QueryParser{
		client:     client,
		model:      config.ParserModel,
		vocabulary: vocabulary,
		languages:  config.Languages,
		expansions: config.ExpansionsPerLanguage,
		logger:     slog.Default().With("component", "openai-parser"),
	}, nil
}

// NewQueryParser creates a new query parser using the provided configuration
// and vocabulary.
//
// Returns ai.QueryParser interface to enforce abstraction.
func NewQueryParser(config *ai.Config, vocabulary *vocab.Vocabulary) (ai.QueryParser, error) {
	return newQueryParser(config, vocabulary)
}

// ParseQuery interprets a query using an LLM and normalizes the result
// against the vocabulary. Property values the model invents are dropped
// rather than passed through.
func (p *QueryParser) ParseQuery(ctx context.Context, query string) (*ai.ParseResult, error) {
	query = truncateRunes(strings.TrimSpace(query), maxQueryRunes)

	systemPrompt := buildParsePrompt(p.vocabulary, p.languages, p.expansions)
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
				llms.TextPart(query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var parsed parseResponse
	var usage ai.Usage
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			p.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, ai.ClassifyError(err)
		}

		if len(response.Choices) < 1 {
			lastErr = fmt.Errorf("%w: no choices returned", ai.ErrMalformedResponse)
			p.logger.Warn("no choices returned from model", "attempt", attempt+1)
			continue
		}

		choice := response.Choices[0]
		usage = usage.Add(usageFromChoice(choice, systemPrompt+query, choice.Content))

		responseText := repairJSON(stripCodeFences(choice.Content))
		if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
			lastErr = err
			p.logger.Warn("error parsing model response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		p.logger.Error("failed to parse model response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %s", ai.ErrMalformedResponse, lastErr)
	}

	result := &ai.ParseResult{
		Query: p.normalize(&parsed),
		Model: p.model,
		Usage: usage,
	}
	p.logger.Debug("parsed query",
		"core", len(result.Query.CoreKeywords),
		"expanded", len(result.Query.ExpandedKeywords),
		"vague", result.Query.IsVague,
		"confidence", result.Query.Confidence)
	return result, nil
}

// normalize converts the raw model output into a valid structured query.
// Keywords are lowercased and deduplicated, the expanded set is forced to
// be a superset of the core set and capped, and property values are
// resolved through the vocabulary so fabricated ones disappear.
func (p *QueryParser) normalize(r *parseResponse) *core.ParsedQuery {
	q := &core.ParsedQuery{
		IsVague:       r.IsVague,
		Understanding: strings.TrimSpace(r.Understanding),
	}

	q.CoreKeywords = normalizeKeywords(r.CoreKeywords, 0)
	expandedCap := len(q.CoreKeywords) * (1 + len(p.languages)*p.expansions)
	q.ExpandedKeywords = normalizeKeywords(append(append([]string(nil), q.CoreKeywords...), r.ExpandedKeywords...), expandedCap)
	q.NegatedKeywords = normalizeKeywords(r.NegatedKeywords, 0)

	if r.Priority >= core.PriorityNone && r.Priority <= core.PriorityMax && r.Priority != core.PriorityUnset {
		q.Priority = r.Priority
	}
	q.Statuses = p.vocabulary.ResolveStatusMulti(r.Statuses)

	// due_range wins over due_date when the model sets both despite the
	// prompt telling it not to.
	if r.DueRange != nil {
		rng := &core.DueDateRange{Operator: r.DueRange.Operator, Date: ""}
		if code, ok := p.vocabulary.ResolveDueDateKeyword(r.DueRange.Date); ok {
			rng.Date = code
		}
		if core.ValidateDueDateRange(rng) == nil {
			q.DueDateRange = rng
		}
	}
	if q.DueDateRange == nil && r.DueDate != "" {
		if code, ok := p.vocabulary.ResolveDueDateKeyword(r.DueDate); ok {
			q.DueDate = code
		}
	}

	q.Folder = strings.Trim(strings.TrimSpace(r.Folder), "/")
	q.Tags = normalizeKeywords(r.Tags, 0)

	q.Confidence = r.Confidence
	if q.Confidence < 0 {
		q.Confidence = 0
	}
	if q.Confidence > 1 {
		q.Confidence = 1
	}

	return q
}

// normalizeKeywords lowercases, trims, and deduplicates keywords preserving
// order. A positive limit caps the result length; core keywords are always
// placed first by callers so the cap never cuts them.
func normalizeKeywords(words []string, limit int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
