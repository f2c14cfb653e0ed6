// Copyright 2025 Warelogix
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
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule is one curated co-occurrence bonus. When every term occurs in both
// the normalized query and a record's search text, records matching one of
// the targets receive the bonus. Rules encode known hard cases the ranking
// must get right; they are data, not scoring logic.
type Rule struct {
	// Terms are normalized substrings that must all be present in the query
	// and in the record text for the rule to fire.
	Terms []string `yaml:"terms"`
	// Targets are process codes. A code containing a dot matches exactly;
	// a bare category code such as "B3" also matches its whole subtree.
	Targets []string `yaml:"targets"`
	Bonus   int      `yaml:"bonus"`
}

// AppliesTo reports whether the rule targets the given process code.
func (r *Rule) AppliesTo(processID string) bool {
	for _, target := range r.Targets {
		if processID == target {
			return true
		}
		if !strings.Contains(target, ".") && strings.HasPrefix(processID, target+".") {
			return true
		}
	}
	return false
}

// ruleTermsPresent reports whether every term occurs in the text. A rule
// with no terms never fires.
func ruleTermsPresent(terms []string, text string) bool {
	if len(terms) == 0 {
		return false
	}
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// Rules is the curated, versioned data asset consulted by the scorer:
// the irregular-form stem table and the co-occurrence bonus rules.
// Domain experts extend it by editing a YAML file; the scoring logic
// never changes for a new rule.
type Rules struct {
	Version string `yaml:"version"`
	// Stems maps a normalized word form to its curated stem candidates,
	// covering irregular and domain-specific catalog vocabulary that the
	// suffix heuristics miss.
	Stems   map[string][]string `yaml:"stems"`
	Bonuses []Rule              `yaml:"bonuses"`
}

// LoadRules reads a Rules asset from YAML. Terms, stem keys and stem values
// are normalized on load so rule authors need not care about case or letter
// variants.
func LoadRules(r io.Reader) (*Rules, error) {
	var rules Rules
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	rules.normalize()
	return &rules, nil
}

func (r *Rules) normalize() {
	stems := make(map[string][]string, len(r.Stems))
	for word, candidates := range r.Stems {
		normalized := make([]string, len(candidates))
		for i, candidate := range candidates {
			normalized[i] = normalizeText(candidate)
		}
		stems[normalizeText(word)] = normalized
	}
	r.Stems = stems

	for i := range r.Bonuses {
		for j, term := range r.Bonuses[i].Terms {
			r.Bonuses[i].Terms[j] = normalizeText(term)
		}
	}
}

// DefaultRules returns the built-in rule set covering the catalog's
// high-frequency vocabulary. The tables in rules_data.go are already
// normalized, so no folding pass is needed here.
func DefaultRules() *Rules {
	return &Rules{
		Version: defaultRulesVersion,
		Stems:   defaultStems,
		Bonuses: defaultBonuses,
	}
}
