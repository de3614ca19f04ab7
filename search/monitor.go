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
	"github.com/wenlzhang/taskchat/core"
)

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterParse(parsed *core.ParsedQuery, source ParserSource)
	ParserFallback(reason string)
	AfterClassification(vague bool, ratio float64)
	AfterPropertyFilter(filter *core.PropertyFilter, candidates int)
	AfterDedupe(kept []string, dropped []string)
	AfterScoring(scored []core.ScoredTask)
	AfterQualityGate(kept int, threshold float64)
	RecommendationFallback(reason string)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                    {}
func (n *noopMonitor) AfterParse(_ *core.ParsedQuery, _ ParserSource)    {}
func (n *noopMonitor) ParserFallback(_ string)                           {}
func (n *noopMonitor) AfterClassification(_ bool, _ float64)             {}
func (n *noopMonitor) AfterPropertyFilter(_ *core.PropertyFilter, _ int) {}
func (n *noopMonitor) AfterDedupe(_ []string, _ []string)                {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredTask)                  {}
func (n *noopMonitor) AfterQualityGate(_ int, _ float64)                 {}
func (n *noopMonitor) RecommendationFallback(_ string)                   {}
func (n *noopMonitor) Finish(_ *Result)                                  {}
