// Package engine picks chess moves with a fixed-depth alpha-beta search.
// Board rules, move generation and hashing come from dragontoothmg; this
// package layers move ordering, a shared score cache and a parallel root
// search on top of it.
package engine

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Color identifies one side of the board.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white"/"black" and the FEN letters "w"/"b".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return White, fmt.Errorf("unknown color %q", s)
}

// Engine searches for the best move from the point of view of one fixed
// color. Scores it produces are always from that side's perspective, no
// matter whose turn it is in the position being scored.
type Engine struct {
	perspective Color
	maxDepth    int
	threads     int

	tt    *TranspositionTable
	stats *searchCounters
}

// NewEngine returns an engine maximizing for the given color at the given
// search depth in plies. Depths below 1 are raised to 1.
func NewEngine(perspective Color, maxDepth int) *Engine {
	return &Engine{
		perspective: perspective,
		maxDepth:    max(1, maxDepth),
		threads:     runtime.NumCPU(),
		tt:          NewTranspositionTable(),
		stats:       &searchCounters{},
	}
}

// SetThreads bounds the number of concurrent root workers. Values below 1
// reset the bound to the core count.
func (e *Engine) SetThreads(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	e.threads = n
}

// SetMaxDepth changes the search depth used by subsequent BestMove calls.
func (e *Engine) SetMaxDepth(depth int) {
	e.maxDepth = max(1, depth)
}

func (e *Engine) Perspective() Color { return e.perspective }

func (e *Engine) MaxDepth() int { return e.maxDepth }

// ParseFen wraps the move generator's FEN parser, which panics on malformed
// input, into an error return.
func ParseFen(fen string) (board dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid FEN %q: %v", fen, r)
		}
	}()
	board = dragontoothmg.ParseFen(fen)
	return board, nil
}

func sideToMove(b *dragontoothmg.Board) Color {
	if b.Wtomove {
		return White
	}
	return Black
}

// isGameOver reports whether the position has no legal continuation: the
// side to move has no legal moves, or the halfmove clock has reached the
// fifty-move rule. Repetition and insufficient material are not tracked by
// the board handle and are not detected here.
func isGameOver(b *dragontoothmg.Board, legalMoves []dragontoothmg.Move) bool {
	return len(legalMoves) == 0 || b.Halfmoveclock >= 100
}
