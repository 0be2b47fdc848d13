package engine

import "sync/atomic"

// searchCounters collects per-search statistics. Root workers bump them
// concurrently, so every field is an atomic.
type searchCounters struct {
	nodes        atomic.Uint64
	leafEvals    atomic.Uint64
	betaCutoffs  atomic.Uint64
	alphaCutoffs atomic.Uint64
}

// Stats is a point-in-time copy of the counters for the most recent search.
type Stats struct {
	Nodes        uint64 // Search invocations, root branches included
	LeafEvals    uint64 // direct evaluations at depth zero or terminal nodes
	BetaCutoffs  uint64 // loop exits at maximizing nodes
	AlphaCutoffs uint64 // loop exits at minimizing nodes
	TableSize    int
	TableProbes  uint64
	TableHits    uint64
}

// Stats snapshots the counters accumulated since the last BestMove call.
func (e *Engine) Stats() Stats {
	probes, hits := e.tt.Probes()
	return Stats{
		Nodes:        e.stats.nodes.Load(),
		LeafEvals:    e.stats.leafEvals.Load(),
		BetaCutoffs:  e.stats.betaCutoffs.Load(),
		AlphaCutoffs: e.stats.alphaCutoffs.Load(),
		TableSize:    e.tt.Len(),
		TableProbes:  probes,
		TableHits:    hits,
	}
}
