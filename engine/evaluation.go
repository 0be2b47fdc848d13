package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// mateScore is the sentinel for a decided position. It has to dominate any
// sum the remaining evaluation terms can produce, so that a mate is always
// preferred over material gain and avoided over material loss.
const mateScore float64 = 1e9

// Before move 10, mobility is rewarded at 1/30th of a pawn per legal move.
const (
	openingMoveLimit      = 10
	openingMobilityWeight = 1.0 / 30.0
)

var pieceList = []dragontoothmg.Piece{
	dragontoothmg.Pawn,
	dragontoothmg.Knight,
	dragontoothmg.Bishop,
	dragontoothmg.Rook,
	dragontoothmg.Queen,
	dragontoothmg.King,
}

var pieceValue = [7]float64{
	dragontoothmg.Pawn:   1,
	dragontoothmg.Knight: 3.5,
	dragontoothmg.Bishop: 3.5,
	dragontoothmg.Rook:   5.25,
	dragontoothmg.Queen:  9,
	dragontoothmg.King:   0,
}

// d4, e4, d5 and e5 on the little-endian board.
var centerSquares = [4]uint8{27, 28, 35, 36}

var centerWeight = [7]float64{
	dragontoothmg.Pawn:   0.2,
	dragontoothmg.Knight: 0.25,
	dragontoothmg.Bishop: 0.25,
	dragontoothmg.Rook:   0.15,
	dragontoothmg.Queen:  0.3,
	dragontoothmg.King:   0.025,
}

// Evaluate scores the position from the engine's perspective: material
// balance, mate opportunity, the early-game mobility bonus and center
// control, summed. It only reads the board, so concurrent calls are safe as
// long as every caller scores its own copy.
func (e *Engine) Evaluate(b *dragontoothmg.Board) float64 {
	return e.materialScore(b) + e.mateOpportunity(b) + e.openingMobility(b) + e.centerControl(b)
}

func (e *Engine) sideBitboards(b *dragontoothmg.Board) (own, opp *dragontoothmg.Bitboards) {
	if e.perspective == White {
		return &b.White, &b.Black
	}
	return &b.Black, &b.White
}

func (e *Engine) materialScore(b *dragontoothmg.Board) float64 {
	own, opp := e.sideBitboards(b)
	var score float64
	for _, piece := range pieceList {
		diff := bits.OnesCount64(pieceBitboard(own, piece)) - bits.OnesCount64(pieceBitboard(opp, piece))
		score += float64(diff) * pieceValue[piece]
	}
	return score
}

// mateOpportunity returns the mate sentinel when the position has no legal
// moves: negative when the engine's own side is the one stuck, positive
// when the opponent is. Stalemate scores the same as mate.
func (e *Engine) mateOpportunity(b *dragontoothmg.Board) float64 {
	if len(b.GenerateLegalMoves()) > 0 {
		return 0
	}
	if sideToMove(b) == e.perspective {
		return -mateScore
	}
	return mateScore
}

func (e *Engine) openingMobility(b *dragontoothmg.Board) float64 {
	if b.Fullmoveno >= openingMoveLimit {
		return 0
	}
	mobility := float64(len(b.GenerateLegalMoves())) * openingMobilityWeight
	if sideToMove(b) != e.perspective {
		mobility = -mobility
	}
	return mobility
}

func (e *Engine) centerControl(b *dragontoothmg.Board) float64 {
	own, opp := e.sideBitboards(b)
	var score float64
	for _, square := range centerSquares {
		if piece, occupied := GetPieceTypeAtPosition(square, own); occupied {
			score += centerWeight[piece]
		} else if piece, occupied := GetPieceTypeAtPosition(square, opp); occupied {
			score -= centerWeight[piece]
		}
	}
	return score
}

// Nice helper to get what piece is at a square :)
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

func pieceBitboard(bb *dragontoothmg.Bitboards, piece dragontoothmg.Piece) uint64 {
	switch piece {
	case dragontoothmg.Pawn:
		return bb.Pawns
	case dragontoothmg.Knight:
		return bb.Knights
	case dragontoothmg.Bishop:
		return bb.Bishops
	case dragontoothmg.Rook:
		return bb.Rooks
	case dragontoothmg.Queen:
		return bb.Queens
	case dragontoothmg.King:
		return bb.Kings
	}
	return 0
}
