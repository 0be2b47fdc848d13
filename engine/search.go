package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrNoLegalMoves is returned by BestMove when the side to move has no
// legal moves in the root position.
var ErrNoLegalMoves = errors.New("no legal moves in position")

type rootResult struct {
	score float64
	err   error
}

// BestMove searches every legal root move to the engine's depth and returns
// the best one with its score. Root branches run concurrently, each on a
// private copy of the board and each with a fresh full-width window, so
// sibling branches never prune each other. The transposition table is
// rebuilt for every call and shared by all branches of that call. Ties are
// broken deterministically in favor of the move generated first. A branch
// that fails is logged and dropped; the remaining branches still compete.
func (e *Engine) BestMove(b *dragontoothmg.Board) (dragontoothmg.Move, float64, error) {
	e.tt = NewTranspositionTable()
	e.stats = &searchCounters{}

	rootMoves := b.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		return 0, 0, ErrNoLegalMoves
	}

	log.Debug().
		Str("fen", b.ToFen()).
		Str("perspective", e.perspective.String()).
		Int("depth", e.maxDepth).
		Int("threads", e.threads).
		Int("moves", len(rootMoves)).
		Msg("starting root search")

	results := make([]rootResult, len(rootMoves))

	var g errgroup.Group
	g.SetLimit(e.threads)
	for i, move := range rootMoves {
		i, move := i, move
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i].err = fmt.Errorf("root move %s: %v", move.String(), r)
				}
			}()
			child := *b
			child.Apply(move)
			score := e.Search(&child, e.maxDepth-1, math.Inf(-1), math.Inf(1))
			results[i] = rootResult{score: score}
			return nil
		})
	}
	g.Wait()

	var bestMove dragontoothmg.Move
	bestScore := math.Inf(-1)
	picked := false
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			log.Error().Err(res.err).Msg("dropping failed root branch")
			continue
		}
		if !picked || res.score > bestScore {
			bestMove = rootMoves[i]
			bestScore = res.score
			picked = true
		}
	}
	if !picked {
		return 0, 0, fmt.Errorf("all %d root branches failed", failed)
	}

	log.Debug().
		Str("move", bestMove.String()).
		Float64("score", bestScore).
		Uint64("nodes", e.stats.nodes.Load()).
		Int("cached", e.tt.Len()).
		Msg("search complete")

	return bestMove, bestScore, nil
}

// Search returns the value of the position at the given remaining depth,
// always from the engine's perspective. Whether a node maximizes or
// minimizes follows the side to move in that node's position, not depth
// parity. The board is mutated during the walk and restored before
// returning; the caller keeps ownership of it.
func (e *Engine) Search(b *dragontoothmg.Board, depth int, alpha, beta float64) float64 {
	e.stats.nodes.Add(1)

	moves := b.GenerateLegalMoves()
	if depth == 0 || isGameOver(b, moves) {
		e.stats.leafEvals.Add(1)
		return e.Evaluate(b)
	}

	/*
		TRANSPOSITION TABLE LOOKUP
		A hit short-circuits the node with whatever score was stored first,
		regardless of the window or depth that produced it.
	*/
	posHash := b.Hash()
	if score, ok := e.tt.Get(posHash); ok {
		return score
	}

	var best float64
	if sideToMove(b) == e.perspective {
		best = math.Inf(-1)
		for _, move := range OrderMoves(b, moves) {
			unapply := b.Apply(move)
			score := e.Search(b, depth-1, alpha, beta)
			unapply()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				e.stats.betaCutoffs.Add(1)
				break
			}
		}
	} else {
		best = math.Inf(1)
		for _, move := range OrderMoves(b, moves) {
			unapply := b.Apply(move)
			score := e.Search(b, depth-1, alpha, beta)
			unapply()
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				e.stats.alphaCutoffs.Add(1)
				break
			}
		}
	}

	e.tt.Put(posHash, best)
	return best
}
