package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

func moveStrings(moves []dragontoothmg.Move) []string {
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = move.String()
	}
	return out
}

func TestOrderMovesStartposKeepsGenerationOrder(t *testing.T) {
	board := mustParseFen(t, dragontoothmg.Startpos)
	moves := board.GenerateLegalMoves()

	// No captures and no checks available, so the stable sort must hand
	// back the generator's order untouched
	ordered := OrderMoves(&board, moves)
	if !slices.Equal(moveStrings(ordered), moveStrings(moves)) {
		t.Fatalf("all-quiet ordering changed: got %v want %v", moveStrings(ordered), moveStrings(moves))
	}
}

func TestOrderMovesCapturesFirst(t *testing.T) {
	// The only capture is exd5 and no move gives check
	board := mustParseFen(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 10")
	moves := board.GenerateLegalMoves()

	ordered := OrderMoves(&board, moves)
	if ordered[0].String() != "e4d5" {
		t.Fatalf("expected the capture e4d5 first, got %s", ordered[0].String())
	}

	// The quiet remainder keeps the generator's relative order
	var want []string
	for _, move := range moves {
		if move.String() != "e4d5" {
			want = append(want, move.String())
		}
	}
	if !slices.Equal(moveStrings(ordered[1:]), want) {
		t.Fatalf("quiet tail reordered: got %v want %v", moveStrings(ordered[1:]), want)
	}
}

func TestOrderMovesRanksCheckAboveQuiet(t *testing.T) {
	// Ra8 is the only checking move and there is nothing to capture
	board := mustParseFen(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 30")
	moves := board.GenerateLegalMoves()

	ordered := OrderMoves(&board, moves)
	if ordered[0].String() != "a1a8" {
		t.Fatalf("expected the checking move a1a8 first, got %s", ordered[0].String())
	}

	var want []string
	for _, move := range moves {
		if move.String() != "a1a8" {
			want = append(want, move.String())
		}
	}
	if !slices.Equal(moveStrings(ordered[1:]), want) {
		t.Fatalf("quiet tail reordered: got %v want %v", moveStrings(ordered[1:]), want)
	}
}

func TestOrderMovesCheckingCaptureOutranksPlainCapture(t *testing.T) {
	// Qxf7 captures with check, Rxa7 captures quietly, Qd8 and friends
	// only give check
	board := mustParseFen(t, "6k1/p4p2/8/3Q4/8/8/8/R3K3 w - - 0 25")
	moves := board.GenerateLegalMoves()

	ordered := OrderMoves(&board, moves)
	if ordered[0].String() != "d5f7" {
		t.Fatalf("expected the checking capture d5f7 first, got %s", ordered[0].String())
	}
	if ordered[1].String() != "a1a7" {
		t.Fatalf("expected the plain capture a1a7 second, got %s", ordered[1].String())
	}
}

func TestOrderMovesLeavesBoardUnchanged(t *testing.T) {
	board := mustParseFen(t, "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	fenBefore := board.ToFen()
	hashBefore := board.Hash()

	OrderMoves(&board, board.GenerateLegalMoves())

	if fen := board.ToFen(); fen != fenBefore {
		t.Fatalf("board mutated by ordering: got %q want %q", fen, fenBefore)
	}
	if hash := board.Hash(); hash != hashBefore {
		t.Fatalf("zobrist hash changed by ordering: got %#x want %#x", hash, hashBefore)
	}
}
