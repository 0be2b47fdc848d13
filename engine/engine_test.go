package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"w", White},
		{"white", White},
		{"WHITE", White},
		{"b", Black},
		{"black", Black},
		{"Black", Black},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseColor("green"); err == nil {
		t.Fatalf("ParseColor accepted a made-up color")
	}
}

func TestParseFenRejectsGarbage(t *testing.T) {
	if _, err := ParseFen("not a position"); err == nil {
		t.Fatalf("expected an error for malformed FEN")
	}
	board, err := ParseFen(dragontoothmg.Startpos)
	if err != nil {
		t.Fatalf("start position rejected: %v", err)
	}
	if !board.Wtomove {
		t.Fatalf("start position should have White to move")
	}
}

func TestNewEngineClampsDepth(t *testing.T) {
	e := NewEngine(White, 0)
	if e.MaxDepth() != 1 {
		t.Fatalf("depth 0 not raised to 1, got %d", e.MaxDepth())
	}
	e.SetMaxDepth(-3)
	if e.MaxDepth() != 1 {
		t.Fatalf("negative depth not raised to 1, got %d", e.MaxDepth())
	}
	e.SetMaxDepth(6)
	if e.MaxDepth() != 6 {
		t.Fatalf("depth not updated, got %d", e.MaxDepth())
	}
	if e.Perspective() != White {
		t.Fatalf("perspective changed, got %v", e.Perspective())
	}
}

func TestSetThreadsFloor(t *testing.T) {
	e := NewEngine(Black, 2)
	e.SetThreads(3)
	if e.threads != 3 {
		t.Fatalf("threads = %d, want 3", e.threads)
	}
	e.SetThreads(0)
	if e.threads < 1 {
		t.Fatalf("thread floor not applied, got %d", e.threads)
	}
}

func TestIsGameOverFiftyMoveClock(t *testing.T) {
	fresh := mustParseFen(t, "8/8/8/4k3/8/4K3/4R3/8 w - - 99 60")
	done := mustParseFen(t, "8/8/8/4k3/8/4K3/4R3/8 w - - 100 60")

	if isGameOver(&fresh, fresh.GenerateLegalMoves()) {
		t.Fatalf("clock at 99 should not end the game")
	}
	if !isGameOver(&done, done.GenerateLegalMoves()) {
		t.Fatalf("clock at 100 should end the game")
	}
}
