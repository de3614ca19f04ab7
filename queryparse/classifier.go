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

// VaguenessMode controls how a query is classified as vague or specific.
type VaguenessMode int

const (
	// VaguenessAuto classifies by signals: an LLM judgement when one is
	// available, the stop-word ratio otherwise.
	VaguenessAuto VaguenessMode = iota
	// VaguenessForcedSpecific treats every query as specific.
	VaguenessForcedSpecific
	// VaguenessForcedVague treats every query as vague.
	VaguenessForcedVague
)

// Vagueness threshold bounds. Values outside this window make the
// classifier either fire on nearly everything or nearly nothing, so
// configured thresholds are clamped into it.
const (
	DefaultVaguenessThreshold = 0.7
	MinVaguenessThreshold     = 0.5
	MaxVaguenessThreshold     = 0.9
)

// Classifier decides whether a query is vague (recommendation-style, "what
// should I work on") or specific (lookup-style, "fix login bug"). Vague
// queries get recommendation scoring and time-context resolution downstream.
type Classifier struct {
	mode      VaguenessMode
	threshold float64
}

// NewClassifier builds a classifier. The threshold applies only in auto
// mode and is clamped to [MinVaguenessThreshold, MaxVaguenessThreshold].
func NewClassifier(mode VaguenessMode, threshold float64) *Classifier {
	if threshold < MinVaguenessThreshold {
		threshold = MinVaguenessThreshold
	}
	if threshold > MaxVaguenessThreshold {
		threshold = MaxVaguenessThreshold
	}
	return &Classifier{mode: mode, threshold: threshold}
}

// Threshold returns the effective (clamped) vagueness threshold.
func (c *Classifier) Threshold() float64 { return c.threshold }

// Classify reports whether a query is vague. llmVague carries the LLM
// parser's own judgement when one was obtained, nil otherwise; in auto
// mode it takes precedence over the stop-word ratio.
func (c *Classifier) Classify(ratio float64, llmVague *bool) bool {
	switch c.mode {
	case VaguenessForcedSpecific:
		return false
	case VaguenessForcedVague:
		return true
	}
	if llmVague != nil {
		return *llmVague
	}
	return ratio >= c.threshold
}
