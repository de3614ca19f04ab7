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


package queryparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

// Property-trigger patterns. Every match is removed from the query text
// before leftover keywords are computed, so "p1 fix bug" yields keywords
// ["fix","bug"], not ["p1","fix","bug"].
var (
	dueRangeRe = regexp.MustCompile(`(?i)\bdue\s+(before|after)\s*:\s*(\S+)`)
	dueRe      = regexp.MustCompile(`(?i)\b(?:due|d)\s*:\s*(\S+)`)
	priorityRe = regexp.MustCompile(`(?i)\bpriority\s*:\s*(\S+)`)
	pShortRe   = regexp.MustCompile(`(?i)\bp([1-4])\b`)
	statusRe   = regexp.MustCompile(`(?i)\b(?:status|s)\s*:\s*(\S+)`)
	folderRe   = regexp.MustCompile(`##([\p{L}\p{N}_/-]+)`)
	tagRe      = regexp.MustCompile(`#([\p{L}\p{N}_/-]+)`)
	relDateRe  = regexp.MustCompile(`\+\d+[dwm]\b`)
)

// Parser is the deterministic, no-LLM query parser. It extracts structured
// filters and literal keywords by pattern matching, with no semantic
// expansion. It is the free/local search tier and the fallback when the
// LLM tier fails, and it never returns an error for any input.
type Parser struct {
	vocabulary *vocab.Vocabulary
	stop       *vocab.StopWordFilter
}

// NewParser creates a parser over the given vocabulary and stop-word filter.
// A nil vocabulary falls back to the built-in defaults.
func NewParser(vocabulary *vocab.Vocabulary, stop *vocab.StopWordFilter) *Parser {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	if stop == nil {
		stop = vocab.NewStopWordFilter(nil, nil)
	}
	return &Parser{vocabulary: vocabulary, stop: stop}
}

// Parse extracts a structured query from free text. The expanded keyword
// set equals the core set: this tier does no semantic expansion.
func (p *Parser) Parse(query string) *core.ParsedQuery {
	q := &core.ParsedQuery{}
	working := strings.TrimSpace(query)
	if working == "" {
		return q
	}

	working = p.extractDueRange(working, q)
	working = p.extractDue(working, q)
	working = p.extractPriority(working, q)
	working = p.extractStatus(working, q)
	working = p.extractFolderAndTags(working, q)

	p.extractKeywords(working, query, q)

	q.ExpandedKeywords = append([]string(nil), q.CoreKeywords...)
	return q
}

func (p *Parser) extractDueRange(working string, q *core.ParsedQuery) string {
	return dueRangeRe.ReplaceAllStringFunc(working, func(match string) string {
		m := dueRangeRe.FindStringSubmatch(match)
		code, ok := p.vocabulary.ResolveDueDateKeyword(m[2])
		if !ok {
			// Not a due-date trigger after all; keep the text for the
			// keyword pass.
			return match
		}
		op := "<"
		if strings.EqualFold(m[1], "after") {
			op = ">"
		}
		if q.DueDateRange == nil && q.DueDate == "" {
			q.DueDateRange = &core.DueDateRange{Operator: op, Date: code}
		}
		return " "
	})
}

func (p *Parser) extractDue(working string, q *core.ParsedQuery) string {
	working = dueRe.ReplaceAllStringFunc(working, func(match string) string {
		m := dueRe.FindStringSubmatch(match)
		code, ok := p.vocabulary.ResolveDueDateKeyword(m[1])
		if !ok {
			// Not a due-date trigger after all; keep the text for the
			// keyword pass.
			return match
		}
		if q.DueDate == "" && q.DueDateRange == nil {
			q.DueDate = code
		}
		return " "
	})
	// Bare relative offsets like "+3d" count as due dates too.
	return relDateRe.ReplaceAllStringFunc(working, func(match string) string {
		if q.DueDate == "" && q.DueDateRange == nil {
			q.DueDate = match
		}
		return " "
	})
}

func (p *Parser) extractPriority(working string, q *core.ParsedQuery) string {
	working = priorityRe.ReplaceAllStringFunc(working, func(match string) string {
		m := priorityRe.FindStringSubmatch(match)
		if level := p.vocabulary.ResolvePriority(m[1]); level != core.PriorityUnset {
			if q.Priority == core.PriorityUnset {
				q.Priority = level
			}
		}
		return " "
	})
	return pShortRe.ReplaceAllStringFunc(working, func(match string) string {
		m := pShortRe.FindStringSubmatch(match)
		level, err := strconv.Atoi(m[1])
		if err == nil && q.Priority == core.PriorityUnset {
			q.Priority = level
		}
		return " "
	})
}

func (p *Parser) extractStatus(working string, q *core.ParsedQuery) string {
	return statusRe.ReplaceAllStringFunc(working, func(match string) string {
		m := statusRe.FindStringSubmatch(match)
		keys := p.vocabulary.ResolveStatusMulti(strings.Split(m[1], ","))
		q.Statuses = appendDistinct(q.Statuses, keys...)
		return " "
	})
}

func (p *Parser) extractFolderAndTags(working string, q *core.ParsedQuery) string {
	// Folder markers ("##project") must be consumed before tag markers,
	// or "##" would parse as a tag named "#project".
	working = folderRe.ReplaceAllStringFunc(working, func(match string) string {
		m := folderRe.FindStringSubmatch(match)
		if q.Folder == "" {
			q.Folder = m[1]
		}
		return " "
	})
	return tagRe.ReplaceAllStringFunc(working, func(match string) string {
		m := tagRe.FindStringSubmatch(match)
		q.Tags = appendDistinct(q.Tags, m[1])
		return " "
	})
}

// extractKeywords turns what remains of the query into literal keywords.
// Bare words are first disambiguated against the vocabulary (status
// category name > priority indicator > due-date indicator > keyword);
// stop words are stripped from the keyword list. An all-stop-word query
// legitimately yields zero keywords. A query that dissolves entirely into
// punctuation keeps the raw text as one literal keyword so that parsing
// never comes back empty-handed for non-empty input.
func (p *Parser) extractKeywords(working, original string, q *core.ParsedQuery) {
	var candidates []string
	sawToken := false

	for _, tok := range strings.Fields(working) {
		negated := false
		switch tok {
		case "&", "|":
			continue
		}
		if strings.HasPrefix(tok, "!") {
			negated = true
			tok = strings.TrimPrefix(tok, "!")
		}
		tok = strings.Trim(tok, ".,!?;:'\"()[]{}<>")
		if tok == "" {
			continue
		}
		sawToken = true

		if negated {
			q.NegatedKeywords = appendDistinct(q.NegatedKeywords, strings.ToLower(tok))
			continue
		}

		switch res := p.vocabulary.Resolve(tok); res.Kind {
		case vocab.WordStatus:
			q.Statuses = appendDistinct(q.Statuses, res.Status)
		case vocab.WordPriority:
			if q.Priority == core.PriorityUnset {
				q.Priority = res.Priority
			}
		case vocab.WordDueDate:
			if q.DueDate == "" && q.DueDateRange == nil {
				q.DueDate = res.DueDate
			}
		default:
			candidates = append(candidates, strings.ToLower(tok))
		}
	}

	for _, kw := range p.stop.Filter(candidates) {
		q.CoreKeywords = appendDistinct(q.CoreKeywords, kw)
	}

	if !sawToken && len(q.CoreKeywords) == 0 && !q.HasProperties() {
		if raw := strings.ToLower(strings.TrimSpace(original)); raw != "" {
			q.CoreKeywords = []string{raw}
		}
	}
}

// VaguenessTokens returns the tokens a vagueness ratio should be computed
// over: every bare word of the query, before stop-word stripping, so that
// generic words still count toward the ratio.
func (p *Parser) VaguenessTokens(query string) []string {
	working := dueRangeRe.ReplaceAllString(query, " ")
	working = dueRe.ReplaceAllString(working, " ")
	working = priorityRe.ReplaceAllString(working, " ")
	working = pShortRe.ReplaceAllString(working, " ")
	working = statusRe.ReplaceAllString(working, " ")
	working = folderRe.ReplaceAllString(working, " ")
	working = tagRe.ReplaceAllString(working, " ")

	var tokens []string
	for _, tok := range strings.Fields(working) {
		tok = strings.Trim(tok, ".,!?;:'\"()[]{}<>")
		if tok == "" || tok == "&" || tok == "|" {
			continue
		}
		tokens = append(tokens, strings.ToLower(strings.TrimPrefix(tok, "!")))
	}
	return tokens
}

// Ratio computes the vagueness ratio of a query using the parser's
// stop-word filter.
func (p *Parser) Ratio(query string) float64 {
	return p.stop.VaguenessRatio(p.VaguenessTokens(query))
}

func appendDistinct(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
