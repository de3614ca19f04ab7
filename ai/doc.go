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


// Package ai provides abstractions for the language-model services used in
// task search.
//
// The package defines interfaces for LLM-backed query parsing and task
// recommendation. It follows the dependency inversion principle, allowing
// the search pipeline to depend on abstractions rather than concrete
// implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - QueryParser: Turns a natural-language query into a structured query
//     with multilingual keyword expansion
//   - Recommender: Generates conversational answers grounded in scored tasks
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction. Test utility constructors in ai/mock return concrete types
// so tests can inject behavior via function fields and assert on call
// counts.
//
// # Failure Model
//
// Every QueryParser failure is survivable: the search pipeline falls back
// to deterministic parsing. Errors are classified into the sentinel values
// in this package (ErrAuthFailed, ErrRateLimited, ErrContextLength,
// ErrMalformedResponse, ErrUnreachable) so callers can branch on errors.Is.
package ai
