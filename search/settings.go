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

import "github.com/wenlzhang/taskchat/queryparse"

// Mode selects how much language-model help a query gets.
type Mode int

const (
	// ModeLocal uses only the deterministic parser. No network calls.
	ModeLocal Mode = iota
	// ModeAssisted uses the LLM parser for understanding and keyword
	// expansion; results are ranked and returned directly.
	ModeAssisted
	// ModeConversational is ModeAssisted plus a second LLM call that
	// narrates the ranked results.
	ModeConversational
)

func (m Mode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeAssisted:
		return "assisted"
	case ModeConversational:
		return "conversational"
	}
	return "unknown"
}

// Coefficients weight the four scoring components in the composite score.
// Raising one biases ranking toward that dimension independently of the
// others.
type Coefficients struct {
	Relevance float64
	DueDate   float64
	Priority  float64
	Status    float64

	// CoreBonus is the extra relevance weight a full core-keyword match
	// earns on top of the expanded-match ratio.
	CoreBonus float64
}

// DefaultCoefficients returns the stock weighting: keyword relevance
// dominates, due-date urgency is a strong secondary signal, priority and
// status nudge.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Relevance: 20,
		DueDate:   4,
		Priority:  1,
		Status:    1,
		CoreBonus: 0.2,
	}
}

// UrgencyWeights maps a task's due-date proximity to a score.
type UrgencyWeights struct {
	Overdue float64
	Today   float64
	Week    float64 // due within 7 days
	Month   float64 // due within ~1 month
	Later   float64
	None    float64
}

// DefaultUrgencyWeights returns the stock urgency curve.
func DefaultUrgencyWeights() UrgencyWeights {
	return UrgencyWeights{
		Overdue: 1.5,
		Today:   1.3,
		Week:    1.0,
		Month:   0.5,
		Later:   0.2,
		None:    0.1,
	}
}

// DefaultSortCriteria is the stock tie-breaking chain.
var DefaultSortCriteria = []string{
	CriterionRelevance,
	CriterionDueDate,
	CriterionPriority,
	CriterionStatus,
}

// Settings is the per-searcher configuration. Each query gets an immutable
// copy at submission time, so a settings change never alters an in-flight
// request or mislabels which model produced a result.
type Settings struct {
	Mode Mode

	// TopN caps how many ranked tasks a query returns. 0 means no cap.
	TopN int

	Coefficients Coefficients
	Urgency      UrgencyWeights

	// Threshold is the quality gate as a fraction of the theoretical
	// maximum score. 0 selects the adaptive gate.
	Threshold float64

	// SortCriteria orders the tie-breaking chain. Unknown criterion names
	// are skipped.
	SortCriteria []string

	VaguenessMode      queryparse.VaguenessMode
	VaguenessThreshold float64
}

// DefaultSettings returns the stock configuration: local mode, top 10,
// adaptive gate, auto vagueness.
func DefaultSettings() Settings {
	return Settings{
		Mode:               ModeLocal,
		TopN:               10,
		Coefficients:       DefaultCoefficients(),
		Urgency:            DefaultUrgencyWeights(),
		Threshold:          0,
		SortCriteria:       append([]string(nil), DefaultSortCriteria...),
		VaguenessMode:      queryparse.VaguenessAuto,
		VaguenessThreshold: queryparse.DefaultVaguenessThreshold,
	}
}

// snapshot returns a deep copy safe to hold across an async request.
func (s Settings) snapshot() Settings {
	out := s
	out.SortCriteria = append([]string(nil), s.SortCriteria...)
	return out
}
