package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/storage"
)

const (
	// defaultLimit bounds the ranked shortlist.
	defaultLimit = 5
	// defaultMinScore is the relevance floor; matches scoring at or below it
	// are considered noise.
	defaultMinScore = 10
)

// Relevance score weights. All bonuses are additive integers.
const (
	bonusAllWordsFound    = 100 // every query word matched
	bonusAllButOneFound   = 70  // one query word missing
	bonusAllButTwoFound   = 40  // at most two query words missing
	bonusPerFoundWord     = 10  // fallback, per matched word
	bonusPerStemAnywhere  = 3   // per distinct stem candidate in the record text
	bonusExactPhrase      = 50  // full normalized query as a contiguous substring
	bonusPerStemInName    = 15  // per stem candidate within the process name
	bonusPerStemInKeyword = 10  // per stem candidate within the keyword tags
	bonusPerStemInDesc    = 8   // per stem candidate within the description
)

// Searcher ranks catalog records against free-form keyword queries using
// language-aware stemming and a multi-factor additive scoring heuristic.
type Searcher struct {
	catalog  storage.CatalogRepository
	rules    *Rules
	limit    int
	minScore int
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithRules replaces the built-in curated rule set.
func WithRules(rules *Rules) Option {
	return func(s *Searcher) error {
		if rules == nil {
			return ErrRulesRequired
		}
		s.rules = rules
		return nil
	}
}

// WithLimit sets the maximum number of ranked results.
// Default is 5.
func WithLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit > 0 {
			s.limit = limit
		}
		return nil
	}
}

// NewSearcher creates a new searcher over the given catalog.
func NewSearcher(catalog storage.CatalogRepository, opts ...Option) (*Searcher, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}

	s := &Searcher{
		catalog:  catalog,
		rules:    DefaultRules(),
		limit:    defaultLimit,
		minScore: defaultMinScore,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search ranks catalog records against the query and returns at most the
// configured limit, ordered by descending relevance with catalog order
// breaking ties. An empty result is a normal outcome for short, empty, or
// unmatched queries, never an error; only storage faults return an error.
func (s *Searcher) Search(ctx context.Context, query string) ([]*core.ProcessRecord, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor is Search with observation hooks. The monitor receives
// callbacks at each stage of the ranking pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) ([]*core.ProcessRecord, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// The caller is expected to reject sub-2-character queries before
	// invoking search; the guard here makes the engine safe on its own.
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < 2 {
		monitor.Finish(nil)
		return nil, nil
	}

	// Exact-code shortcut: a query shaped like a process code resolves by
	// direct lookup, bypassing ranking. A miss falls through to word search.
	if record, ok, err := s.lookupByCode(ctx, trimmed); err != nil {
		return nil, err
	} else if ok {
		monitor.ExactCodeHit(record)
		results := []*core.ProcessRecord{record}
		monitor.Finish(results)
		return results, nil
	}

	words := tokenize(trimmed)
	if len(words) == 0 {
		monitor.Finish(nil)
		return nil, nil
	}

	// Stem candidates per query word, deterministic from the word alone.
	stemsByWord := make(map[string][]string, len(words))
	wordStems := make([][]string, len(words))
	for i, word := range words {
		wordStems[i] = stemCandidates(word, s.rules.Stems)
		stemsByWord[word] = wordStems[i]
	}
	monitor.AfterStemming(stemsByWord)

	// Distinct candidates across all words, for the per-stem bonuses.
	allStems := distinctStems(wordStems)

	records, err := s.catalog.GetAllProcessesFull(ctx)
	if err != nil {
		s.logger.Error("error reading catalog for search", "query", query, "err", err)
		return nil, err
	}

	normQuery := normalizeText(trimmed)

	// Match every record, keeping catalog order for stable tie-breaking.
	type candidate struct {
		record *core.ProcessRecord
		text   searchText
		found  int
	}
	candidates := make([]candidate, 0, len(records))
	maxFound := 0
	for _, record := range records {
		text := newSearchText(record.ProcessName, record.Description, record.Keywords)
		found := countFoundWords(wordStems, text.all)
		if found == 0 {
			continue
		}
		if found > maxFound {
			maxFound = found
		}
		candidates = append(candidates, candidate{record: record, text: text, found: found})
	}

	if len(candidates) == 0 {
		monitor.Finish(nil)
		return nil, nil
	}

	// Coverage filter: only records matching the most query words survive.
	// A one-word partial match must never outrank a full-coverage record.
	matches := make([]*core.ScoredMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.found < maxFound {
			continue
		}
		match := &core.ScoredMatch{
			Record:     c.record,
			FoundWords: c.found,
			Score:      s.scoreRecord(c.record, c.text, allStems, normQuery, c.found, len(words)),
		}
		monitor.RecordScored(match)
		matches = append(matches, match)
	}
	monitor.AfterCoverageFilter(maxFound, len(matches))

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > s.limit {
		matches = matches[:s.limit]
	}

	results := make([]*core.ProcessRecord, 0, len(matches))
	for _, match := range matches {
		if match.Score > s.minScore {
			results = append(results, match.Record)
		}
	}

	// Lenient fallback: when the floor would discard every surviving match,
	// surface the best-scoring ones rather than nothing. The caller already
	// distinguishes "nothing matched" in its messaging.
	if len(results) == 0 {
		best := matches[0].Score
		for _, match := range matches {
			if match.Score == best {
				results = append(results, match.Record)
			}
		}
	}

	monitor.Finish(results)
	return results, nil
}

// lookupByCode attempts the exact-code shortcut. The query is upper-cased
// and stripped of whitespace first; ok reports whether a record was found.
func (s *Searcher) lookupByCode(ctx context.Context, query string) (*core.ProcessRecord, bool, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(query), ""))
	if !core.IsValidProcessCode(clean) {
		return nil, false, nil
	}

	record, err := s.catalog.GetProcess(ctx, clean)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, nil
		}
		s.logger.Error("error looking up process code", "code", clean, "err", err)
		return nil, false, err
	}
	return record, true, nil
}

// scoreRecord computes the additive relevance score for one surviving record.
func (s *Searcher) scoreRecord(record *core.ProcessRecord, text searchText, allStems []string, normQuery string, foundWords, totalWords int) int {
	score := 0

	// Coverage bonus
	switch {
	case foundWords == totalWords:
		score += bonusAllWordsFound
	case foundWords == totalWords-1:
		score += bonusAllButOneFound
	case foundWords >= totalWords-2:
		score += bonusAllButTwoFound
	default:
		score += bonusPerFoundWord * foundWords
	}

	// Per-stem bonuses, field-weighted: name over keywords over description.
	for _, stem := range allStems {
		if strings.Contains(text.all, stem) {
			score += bonusPerStemAnywhere
		}
		if strings.Contains(text.name, stem) {
			score += bonusPerStemInName
		}
		if strings.Contains(text.keywords, stem) {
			score += bonusPerStemInKeyword
		}
		if strings.Contains(text.description, stem) {
			score += bonusPerStemInDesc
		}
	}

	// Exact-phrase bonus
	if strings.Contains(text.all, normQuery) {
		score += bonusExactPhrase
	}

	// Curated co-occurrence rules
	for i := range s.rules.Bonuses {
		rule := &s.rules.Bonuses[i]
		if !rule.AppliesTo(record.ProcessID) {
			continue
		}
		if ruleTermsPresent(rule.Terms, normQuery) && ruleTermsPresent(rule.Terms, text.all) {
			score += rule.Bonus
		}
	}

	return score
}

// countFoundWords counts the distinct query words with at least one stem
// candidate occurring as a substring of the record text.
func countFoundWords(wordStems [][]string, text string) int {
	found := 0
	for _, stems := range wordStems {
		for _, stem := range stems {
			if strings.Contains(text, stem) {
				found++
				break
			}
		}
	}
	return found
}

// distinctStems flattens per-word candidate sets into one deduplicated,
// sorted set.
func distinctStems(wordStems [][]string) []string {
	seen := map[string]bool{}
	for _, stems := range wordStems {
		for _, stem := range stems {
			seen[stem] = true
		}
	}
	all := make([]string, 0, len(seen))
	for stem := range seen {
		all = append(all, stem)
	}
	sort.Strings(all)
	return all
}
