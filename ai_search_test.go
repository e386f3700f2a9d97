package main

import (
	"errors"
	"testing"
)

func TestCandidateRequiresNearbyStone(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)

	if !isCandidate(board, 5, 5) {
		t.Fatalf("cell at Chebyshev distance 2 should be a candidate")
	}
	if !isCandidate(board, 7, 9) {
		t.Fatalf("cell two below the stone should be a candidate")
	}
	if isCandidate(board, 4, 7) {
		t.Fatalf("cell at Chebyshev distance 3 should not be a candidate")
	}
	if isCandidate(board, 7, 7) {
		t.Fatalf("occupied cell should not be a candidate")
	}
}

func TestCandidateOnEmptyBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if isCandidate(board, x, y) {
				t.Fatalf("empty board must have no candidates, found (%d,%d)", x, y)
			}
		}
	}
}

func TestMinimaxDepthZeroIsStaticEval(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)
	board.Set(8, 8, CellWhite)
	snapshot := board.Clone()

	got := minimax(&board, 0, -scoreInf, scoreInf, true, PlayerWhite)
	want := EvaluateBoard(board, PlayerWhite)
	if got != want {
		t.Fatalf("depth 0 must return the static evaluation: got %d, want %d", got, want)
	}
	if !board.Equals(snapshot) {
		t.Fatalf("depth-0 search mutated the board")
	}
}

func TestMinimaxRestoresBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellWhite)
	board.Set(6, 6, CellBlack)
	snapshot := board.Clone()

	minimax(&board, 3, -scoreInf, scoreInf, true, PlayerWhite)
	if !board.Equals(snapshot) {
		t.Fatalf("search leaked simulated stones onto the board")
	}
}

func TestSelectMoveRestoresBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)
	board.Set(8, 8, CellWhite)
	snapshot := board.Clone()

	if _, err := SelectMove(&board, PlayerWhite, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !board.Equals(snapshot) {
		t.Fatalf("move selection leaked simulated stones onto the board")
	}
}

func TestSelectMoveDeterministic(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellWhite)
	board.Set(7, 8, CellBlack)

	first, err := SelectMove(&board, PlayerWhite, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := SelectMove(&board, PlayerWhite, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Equals(first) {
			t.Fatalf("selection not deterministic: (%d,%d) then (%d,%d)", first.X, first.Y, again.X, again.Y)
		}
	}
}

func TestSelectMoveReturnsLegalCandidate(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	board.Set(7, 7, CellBlack)
	move, err := SelectMove(&board, PlayerWhite, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !board.IsEmpty(move.X, move.Y) {
		t.Fatalf("selected an occupied cell (%d,%d)", move.X, move.Y)
	}
	if chebyshev(move.X-7, move.Y-7) > proximityRadius {
		t.Fatalf("selected cell (%d,%d) outside the candidate radius", move.X, move.Y)
	}
}

func TestSelectMoveCompletesFive(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	// White has an open four; any completion wins outright.
	for x := 3; x <= 6; x++ {
		board.Set(x, 7, CellWhite)
	}
	board.Set(4, 6, CellBlack)
	board.Set(5, 6, CellBlack)

	move, err := SelectMove(&board, PlayerWhite, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	board.Set(move.X, move.Y, CellWhite)
	rules := NewRules(DefaultGameSettings())
	if !rules.IsWin(board, move) {
		t.Fatalf("expected a winning completion, got (%d,%d)", move.X, move.Y)
	}
}

func TestSelectMoveOnFullBoard(t *testing.T) {
	board := NewBoard(3)
	fill := []Cell{CellBlack, CellWhite}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			board.Set(x, y, fill[(x+y)%2])
		}
	}
	_, err := SelectMove(&board, PlayerBlack, 2)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
}

func TestSelectMoveEmptyBoardFallsBackToCenter(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	move, err := SelectMove(&board, PlayerBlack, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.X != 7 || move.Y != 7 {
		t.Fatalf("expected the center fallback, got (%d,%d)", move.X, move.Y)
	}
}

func TestOpeningMoveNearCenter(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	for i := 0; i < 50; i++ {
		move := OpeningMove(board)
		if chebyshev(move.X-7, move.Y-7) > 1 {
			t.Fatalf("opening move (%d,%d) too far from center", move.X, move.Y)
		}
		if !board.IsEmpty(move.X, move.Y) {
			t.Fatalf("opening move (%d,%d) not empty", move.X, move.Y)
		}
	}
}

func TestNearestEmptyToCenter(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	move, ok := nearestEmptyToCenter(board)
	if !ok || move.X != 7 || move.Y != 7 {
		t.Fatalf("expected the center on an empty board, got (%d,%d)", move.X, move.Y)
	}
	board.Set(7, 7, CellBlack)
	move, ok = nearestEmptyToCenter(board)
	if !ok || chebyshev(move.X-7, move.Y-7) != 1 {
		t.Fatalf("expected a cell adjacent to center, got (%d,%d)", move.X, move.Y)
	}
}
