package search

import "github.com/warelogix/procfind/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during
// search, e.g. for a debug view of stems and per-record scores.
type SearchMonitor interface {
	Start(query string)
	ExactCodeHit(record *core.ProcessRecord)
	AfterStemming(stemsByWord map[string][]string)
	AfterCoverageFilter(maxFoundWords int, candidates int)
	RecordScored(match *core.ScoredMatch)
	Finish(results []*core.ProcessRecord)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) ExactCodeHit(_ *core.ProcessRecord)   {}
func (n *noopMonitor) AfterStemming(_ map[string][]string)  {}
func (n *noopMonitor) AfterCoverageFilter(_ int, _ int)     {}
func (n *noopMonitor) RecordScored(_ *core.ScoredMatch)     {}
func (n *noopMonitor) Finish(_ []*core.ProcessRecord)       {}
