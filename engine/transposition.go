package engine

import (
	"sync"
	"sync/atomic"
)

// Shard count must be a power of two so a hash can be masked into a shard.
const ttShardCount = 64

type ttShard struct {
	mu      sync.RWMutex
	entries map[uint64]float64
}

// TranspositionTable caches position scores keyed by zobrist hash. All root
// workers of a search share one table, so entries live behind per-shard
// RWMutexes. Each hash maps to a single score with no depth or bound
// bookkeeping; a cached value computed under a narrow window may be reused
// under a different one, and that imprecision is an accepted part of the
// contract. Entries are never evicted, and hash collisions go undetected.
type TranspositionTable struct {
	shards [ttShardCount]ttShard
	probes atomic.Uint64
	hits   atomic.Uint64
}

func NewTranspositionTable() *TranspositionTable {
	tt := &TranspositionTable{}
	for i := range tt.shards {
		tt.shards[i].entries = make(map[uint64]float64)
	}
	return tt
}

func (tt *TranspositionTable) shard(hash uint64) *ttShard {
	return &tt.shards[hash&(ttShardCount-1)]
}

// Get returns the cached score for a position hash if one was stored.
func (tt *TranspositionTable) Get(hash uint64) (float64, bool) {
	tt.probes.Add(1)
	shard := tt.shard(hash)
	shard.mu.RLock()
	score, ok := shard.entries[hash]
	shard.mu.RUnlock()
	if ok {
		tt.hits.Add(1)
	}
	return score, ok
}

// Put stores a score under a position hash, replacing any previous value.
func (tt *TranspositionTable) Put(hash uint64, score float64) {
	shard := tt.shard(hash)
	shard.mu.Lock()
	shard.entries[hash] = score
	shard.mu.Unlock()
}

// Len counts the cached positions across all shards.
func (tt *TranspositionTable) Len() int {
	total := 0
	for i := range tt.shards {
		shard := &tt.shards[i]
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Probes reports how many lookups ran against the table and how many of
// them hit, since the table was created.
func (tt *TranspositionTable) Probes() (probes, hits uint64) {
	return tt.probes.Load(), tt.hits.Load()
}
