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


package search

import (
	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/core"
)

// ParserSource identifies which parser produced the structured query.
type ParserSource string

const (
	// ParserRegex means the deterministic local parser.
	ParserRegex ParserSource = "regex"
	// ParserLLM means the language-model parser.
	ParserLLM ParserSource = "llm"
)

// Result is the full outcome of one search request. It always carries a
// Report, so a caller can explain an empty Tasks slice to the user instead
// of shrugging.
type Result struct {
	// Query is the raw text as submitted.
	Query string

	// Parsed is the structured form the pipeline ranked against.
	Parsed *core.ParsedQuery

	// ParserSource says which parser produced Parsed.
	ParserSource ParserSource

	// ParserFallback is true when the language-model parse was requested but
	// the deterministic parser had to stand in. ParserFallbackReason says why.
	ParserFallback       bool
	ParserFallbackReason string

	// Vague is the final vague/specific classification after overrides.
	Vague bool

	// Tasks are the ranked matches, best first.
	Tasks []core.ScoredTask

	// Recommendation is set in conversational mode. RecommendationFallback is
	// true when the narration call failed or cited no tasks and the citations
	// were synthesized from the ranking.
	Recommendation         *ai.Recommendation
	RecommendationFallback bool

	// Model names the language model that served the request, when one did.
	Model string

	// Usage totals token consumption across all model calls in this request.
	Usage ai.Usage

	Report Report
}

// Report captures what the pipeline actually did, for diagnostics. A search
// that returns nothing should still tell the user which filter excluded
// everything or which gate cut the last candidate.
type Report struct {
	// CoreKeywords and ExpandedKeywords are the terms matched against task
	// text, after deduplication.
	CoreKeywords     []string
	ExpandedKeywords []string

	// DroppedExpansions are expanded terms removed as substrings of longer
	// kept terms.
	DroppedExpansions []string

	// Filter is the property filter handed to the index, after time-context
	// resolution.
	Filter *core.PropertyFilter

	// CandidateCount is how many tasks survived the property filter.
	// ScoredCount is how many survived the quality gate.
	CandidateCount int
	ScoredCount    int

	// Threshold is the absolute composite score the gate applied, 0 when no
	// gate ran.
	Threshold float64
}
