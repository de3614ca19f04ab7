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


package vocab

import "strings"

// Language-independent generic words: interrogatives, modal and generic
// verbs, and generic task nouns that carry no search intent in any
// configured language.
var coreStopWords = []string{
	"task", "tasks", "todo", "todos", "thing", "things", "item", "items",
	"stuff", "work", "list",
}

// Per-language stop-word lists. Keyed by the language codes accepted in
// the configured language list.
var languageStopWords = map[string][]string{
	"en": {
		"the", "a", "an", "be", "is", "are", "was", "were", "to", "of",
		"and", "or", "in", "on", "at", "that", "this", "these", "those",
		"have", "has", "had", "it", "for", "not", "with", "as", "you",
		"do", "does", "did", "but", "by", "from", "my", "me", "i",
		"what", "which", "who", "when", "where", "how", "why",
		"should", "would", "could", "can", "will", "shall", "must", "may",
		"show", "find", "search", "get", "give", "tell", "need", "want",
		"please", "any", "some", "all", "something", "anything",
	},
	"zh": {
		"的", "了", "是", "我", "你", "他", "她", "它", "们", "这", "那",
		"什么", "怎么", "哪些", "哪个", "吗", "呢", "吧", "要", "想",
		"应该", "可以", "能", "会", "有", "没有", "做", "找", "看", "给",
		"任务", "事情", "东西",
	},
	"ru": {
		"и", "в", "на", "с", "по", "не", "я", "ты", "он", "она", "они",
		"что", "как", "какие", "какой", "когда", "где", "почему",
		"надо", "нужно", "должен", "можно", "могу", "хочу", "сделать",
		"показать", "найти", "есть", "это", "мне", "мои",
		"задача", "задачи", "дела", "дело",
	},
	"es": {
		"el", "la", "los", "las", "un", "una", "de", "del", "en", "y",
		"o", "que", "qué", "como", "cómo", "cuál", "cuáles", "cuándo",
		"dónde", "por", "para", "con", "no", "es", "son", "hay",
		"debo", "debería", "puedo", "quiero", "hacer", "mostrar",
		"buscar", "mis", "mi", "yo", "hoy",
		"tarea", "tareas", "cosa", "cosas",
	},
}

// StopWordFilter classifies generic words so they can be stripped from
// keyword matching and so the vagueness of a whole query can be measured.
type StopWordFilter struct {
	words map[string]struct{}
}

// NewStopWordFilter builds a filter covering the language-independent core
// list, the built-in lists for the given languages, and any user additions.
// Unknown language codes contribute nothing; they are not an error.
func NewStopWordFilter(languages []string, extra []string) *StopWordFilter {
	f := &StopWordFilter{words: make(map[string]struct{})}
	f.add(coreStopWords)
	for _, lang := range languages {
		f.add(languageStopWords[strings.ToLower(strings.TrimSpace(lang))])
	}
	f.add(extra)
	return f
}

func (f *StopWordFilter) add(words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			f.words[w] = struct{}{}
		}
	}
}

// IsStopWord reports whether a word is generic.
func (f *StopWordFilter) IsStopWord(word string) bool {
	_, ok := f.words[strings.ToLower(word)]
	return ok
}

// Filter returns the tokens that are not stop words, preserving order.
func (f *StopWordFilter) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !f.IsStopWord(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// VaguenessRatio returns the fraction of tokens classified generic,
// in [0,1]. An empty token list counts as fully vague: a query that
// dissolved entirely into stop words has no specific intent left.
func (f *StopWordFilter) VaguenessRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 1.0
	}
	generic := 0
	for _, tok := range tokens {
		if f.IsStopWord(tok) {
			generic++
		}
	}
	return float64(generic) / float64(len(tokens))
}
