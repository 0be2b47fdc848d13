package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Ranking bonuses. They stack, so a capture that also gives check comes out
// ahead of a plain capture, and a plain capture ahead of any quiet check.
const (
	captureBonus = 100
	checkBonus   = 50
)

type scoredMove struct {
	move  dragontoothmg.Move
	score int
}

// OrderMoves ranks legal moves for the search loop: captures first, then
// check-giving moves, then everything else. Whether a move gives check is
// probed by applying it and asking the board if the new side to move stands
// in check, undoing right after; the board comes back unchanged. The sort
// is stable, so equal scores keep the generator's enumeration order.
func OrderMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move) []dragontoothmg.Move {
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		var score int
		if dragontoothmg.IsCapture(move, b) {
			score += captureBonus
		}
		unapply := b.Apply(move)
		if b.OurKingInCheck() {
			score += checkBonus
		}
		unapply()
		scored[i] = scoredMove{move: move, score: score}
	}
	slices.SortStableFunc(scored, func(x, y scoredMove) bool {
		return x.score > y.score
	})
	ordered := make([]dragontoothmg.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}
