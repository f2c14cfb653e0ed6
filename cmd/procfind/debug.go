package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/warelogix/procfind/core"
	"github.com/warelogix/procfind/search"
)

// debugMonitor prints each stage of the ranking pipeline, used by the
// search command's --debug flag.
type debugMonitor struct {
	out io.Writer
}

var _ search.SearchMonitor = (*debugMonitor)(nil)

func (m *debugMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %q\n", query)
}

func (m *debugMonitor) ExactCodeHit(record *core.ProcessRecord) {
	fmt.Fprintf(m.out, "exact code hit: %s %s\n", record.ProcessID, record.ProcessName)
}

func (m *debugMonitor) AfterStemming(stemsByWord map[string][]string) {
	words := make([]string, 0, len(stemsByWord))
	for word := range stemsByWord {
		words = append(words, word)
	}
	sort.Strings(words)
	for _, word := range words {
		fmt.Fprintf(m.out, "stems %q: %v\n", word, stemsByWord[word])
	}
}

func (m *debugMonitor) AfterCoverageFilter(maxFoundWords int, candidates int) {
	fmt.Fprintf(m.out, "coverage: max words found %d, candidates %d\n", maxFoundWords, candidates)
}

func (m *debugMonitor) RecordScored(match *core.ScoredMatch) {
	fmt.Fprintf(m.out, "score %4d  %-8s %s\n", match.Score, match.Record.ProcessID, match.Record.ProcessName)
}

func (m *debugMonitor) Finish(results []*core.ProcessRecord) {
	fmt.Fprintf(m.out, "results: %d\n", len(results))
}
