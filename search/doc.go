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


// Package search ranks tasks against natural-language queries.
//
// The Searcher type implements a multi-stage pipeline:
//   - Query understanding, deterministic or language-model assisted
//   - Vague/specific classification and time-context resolution
//   - Property filtering through the task index
//   - Keyword scoring with an adaptive quality gate
//   - Stable multi-criterion sorting
//
// In conversational mode a second model call narrates the ranked results,
// citing tasks by position. The ranked list never depends on that call
// succeeding.
package search
