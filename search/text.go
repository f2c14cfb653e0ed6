package search

import "strings"

// letterFolder collapses letter variants that users type interchangeably.
// The catalog content is Russian, where "ё" and "е" are used inconsistently.
var letterFolder = strings.NewReplacer("ё", "е", "Ё", "Е")

// normalizeText lower-cases text and folds letter variants.
// Both sides of every comparison pass through this function, so matching is
// case- and variant-insensitive in both directions.
func normalizeText(text string) string {
	return strings.ToLower(letterFolder.Replace(text))
}

// tokenize splits a query on whitespace, discarding empty tokens.
func tokenize(query string) []string {
	return strings.Fields(query)
}

// searchText concatenates the normalized record fields scanned during matching.
type searchText struct {
	name        string
	description string
	keywords    string
	all         string
}

func newSearchText(name, description, keywords string) searchText {
	st := searchText{
		name:        normalizeText(name),
		description: normalizeText(description),
		keywords:    normalizeText(keywords),
	}
	st.all = st.name + " " + st.description + " " + st.keywords
	return st
}
