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


// Package queryparse turns free-text task queries into structured queries
// without calling a language model.
//
// The parser recognizes property triggers (p1, status:open, due:tomorrow,
// due before:friday, ##folder, #tag), disambiguates bare words against the
// vocabulary, and keeps the rest as literal keywords. It never fails: the
// worst input degrades to a single literal keyword.
//
// The classifier labels queries vague or specific, and the time-context
// resolver widens exact day filters on vague queries into inclusive
// upper-bound ranges.
package queryparse
