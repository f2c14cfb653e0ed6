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
	"sort"
	"strings"
	"unicode/utf8"
)

// nounEndings are case and number endings stripped from noun forms.
var nounEndings = []string{
	"ов", "ев", "ей", "ам", "ям", "ами", "ями", "ах", "ях",
	"ом", "ем", "ой", "у", "ю", "а", "я", "о", "е", "ь",
}

// adjEndings are gender, number and case endings stripped from adjective forms.
var adjEndings = []string{
	"ый", "ий", "ой", "ая", "яя", "ое", "ее", "ые", "ие", "ым", "им",
	"ей", "ом", "ем", "ую", "юю", "ых", "их",
}

// pluralTails are nominative-plural endings rewritten to singular variants.
var pluralTails = []string{"и", "ы", "я"}

// singularHeads are the singular endings substituted for a plural tail.
var singularHeads = []string{"й", "ь", "е"}

// minStemLen is the shortest candidate worth matching on. Shorter fragments
// occur in nearly every record and only add noise.
const minStemLen = 2

// stemCandidates generates the set of stem candidates for one query word:
// the normalized word itself, inflectional-suffix strips, plural-to-singular
// rewrites, and any curated irregular-form entries. Candidates shorter than
// minStemLen are discarded, the set is deduplicated, and the result is
// sorted so that generation is fully deterministic from the word alone.
func stemCandidates(word string, irregulars map[string][]string) []string {
	word = normalizeText(strings.TrimSpace(word))
	if utf8.RuneCountInString(word) < minStemLen {
		return nil
	}

	seen := map[string]bool{word: true}
	add := func(candidate string) {
		candidate = normalizeText(candidate)
		if utf8.RuneCountInString(candidate) >= minStemLen {
			seen[candidate] = true
		}
	}

	runes := []rune(word)
	wordLen := len(runes)

	// Nouns: plural to singular rewrites, then case/number endings.
	if wordLen > 3 {
		for _, tail := range pluralTails {
			if strings.HasSuffix(word, tail) {
				base := string(runes[:wordLen-1])
				for _, head := range singularHeads {
					add(base + head)
				}
				break
			}
		}

		for _, ending := range nounEndings {
			endLen := utf8.RuneCountInString(ending)
			if strings.HasSuffix(word, ending) && wordLen > endLen+2 {
				add(string(runes[:wordLen-endLen]))
			}
		}
	}

	// Adjectives
	for _, ending := range adjEndings {
		endLen := utf8.RuneCountInString(ending)
		if strings.HasSuffix(word, ending) && wordLen > endLen+2 {
			add(string(runes[:wordLen-endLen]))
		}
	}

	// Curated irregular and domain-specific forms
	for _, stem := range irregulars[word] {
		add(stem)
	}

	candidates := make([]string, 0, len(seen))
	for candidate := range seen {
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)
	return candidates
}
