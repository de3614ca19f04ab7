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

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PriorityConfig is the JSON shape of one configured priority level.
type PriorityConfig struct {
	Symbols []string `json:"symbols"`
	Aliases []string `json:"aliases"`
	Weight  *float64 `json:"weight"`
}

// StatusConfig is the JSON shape of one configured status category.
type StatusConfig struct {
	Key         string   `json:"key"`
	Symbols     []string `json:"symbols"`
	DisplayName string   `json:"displayName"`
	Aliases     []string `json:"aliases"`
	Weight      *float64 `json:"weight"`
	SortOrder   *int     `json:"sortOrder"`
	Description string   `json:"description"`
}

// Config is the persisted property-vocabulary configuration consumed from
// the host application's settings. Every section is optional; missing or
// malformed sections fall back to the built-in defaults.
type Config struct {
	Priorities     map[string]PriorityConfig `json:"priorities"`
	Statuses       []StatusConfig            `json:"statuses"`
	DueDateAliases map[string][]string       `json:"dueDateAliases"`
}

// LoadConfig reads a vocabulary configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing vocabulary config: %w", err)
	}
	return &cfg, nil
}

// New builds a Vocabulary from configuration. A nil config yields the
// built-in defaults. Malformed categories are replaced by their defaults
// and reported as warnings; New never fails.
func New(cfg *Config) (*Vocabulary, []string) {
	v := &Vocabulary{
		priorities:  make(map[int]PriorityLevel),
		statusByKey: make(map[string]int),
		dueAliases:  make(map[string]string),
	}

	v.buildPriorities(cfg)
	v.buildStatuses(cfg)
	v.buildDueDateAliases(cfg)
	v.checkSortOrders()

	return v, v.warnings
}

func (v *Vocabulary) buildPriorities(cfg *Config) {
	for level, def := range defaultPriorities {
		v.priorities[level] = def
	}
	if cfg == nil || len(cfg.Priorities) == 0 {
		return
	}
	for key, pc := range cfg.Priorities {
		level := priorityConfigLevel(key)
		if level == 0 {
			v.warnings = append(v.warnings, fmt.Sprintf("ignoring priority config key %q: not a level 1-4", key))
			continue
		}
		p := v.priorities[level]
		if len(pc.Symbols) > 0 {
			p.Symbols = pc.Symbols
		}
		if len(pc.Aliases) > 0 {
			p.Aliases = pc.Aliases
		}
		if pc.Weight != nil && *pc.Weight >= 0 && *pc.Weight <= 1 {
			p.Weight = *pc.Weight
		}
		v.priorities[level] = p
	}
}

// priorityConfigLevel accepts "1".."4" and "p1".."p4" as config keys.
func priorityConfigLevel(key string) int {
	key = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "p")
	switch key {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	}
	return 0
}

func (v *Vocabulary) buildStatuses(cfg *Config) {
	var configured []StatusCategory
	if cfg != nil {
		for _, sc := range cfg.Statuses {
			if strings.TrimSpace(sc.Key) == "" {
				v.warnings = append(v.warnings, "ignoring status category with empty key")
				continue
			}
			s := StatusCategory{
				Key:         sc.Key,
				Symbols:     sc.Symbols,
				DisplayName: sc.DisplayName,
				Aliases:     sc.Aliases,
				SortOrder:   sc.SortOrder,
				Description: sc.Description,
			}
			if sc.Weight != nil && *sc.Weight >= 0 && *sc.Weight <= 1 {
				s.Weight = *sc.Weight
			} else {
				if sc.Weight != nil {
					v.warnings = append(v.warnings, fmt.Sprintf("status %q: weight out of range, using default", sc.Key))
				}
				s.Weight = defaultWeightFor(sc.Key)
			}
			configured = append(configured, s)
		}
	}
	if len(configured) == 0 {
		configured = defaultStatuses
	}

	for _, s := range configured {
		lower := strings.ToLower(s.Key)
		if _, dup := v.statusByKey[lower]; dup {
			v.warnings = append(v.warnings, fmt.Sprintf("duplicate status category key %q ignored", s.Key))
			continue
		}
		v.statusByKey[lower] = len(v.statuses)
		v.statuses = append(v.statuses, s)
	}
}

func defaultWeightFor(key string) float64 {
	for _, s := range defaultStatuses {
		if strings.EqualFold(s.Key, key) {
			return s.Weight
		}
	}
	return 0.5
}

func (v *Vocabulary) buildDueDateAliases(cfg *Config) {
	register := func(code string, aliases []string) {
		for _, alias := range aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias != "" {
				v.dueAliases[alias] = code
			}
		}
	}
	for code, aliases := range defaultDueDateAliases {
		register(code, aliases)
	}
	if cfg == nil {
		return
	}
	for code, aliases := range cfg.DueDateAliases {
		if _, ok := defaultDueDateAliases[code]; !ok {
			v.warnings = append(v.warnings, fmt.Sprintf("ignoring aliases for unknown due-date keyword %q", code))
			continue
		}
		register(code, aliases)
	}
}
