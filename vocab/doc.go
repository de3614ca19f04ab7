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


// Package vocab holds the user-configured property vocabulary: the mappings
// from natural-language terms, in any configured language, to internal codes
// for priority (1-4), status categories, and due-date keywords.
//
// The vocabulary is consumed by both parser tiers. The deterministic parser
// resolves tokens through it directly; the LLM-backed parser embeds it into
// prompts as documentation for the model. Resolution always goes through
// stable category keys, never user-editable display names.
//
// A bare word can plausibly name a status, a priority, or a due date.
// Resolve applies a fixed precedence (status > priority > due date) so the
// same word always disambiguates the same way.
//
// Configuration is best-effort: a missing or malformed settings section
// falls back to the built-in defaults for that section and surfaces a
// warning, never an error, so a broken settings file cannot block a query.
//
// The package also provides the stop-word filter used to strip generic
// words before keyword matching and to measure how vague a query is.
package vocab
