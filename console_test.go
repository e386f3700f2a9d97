package main

import (
	"strings"
	"testing"
)

func TestParseMoveInput(t *testing.T) {
	cases := []struct {
		input string
		move  Move
	}{
		{"7 7\n", Move{X: 7, Y: 7}},
		{"0 0\n", Move{X: 0, Y: 0}},
		{"2 6\n", Move{X: 6, Y: 2}},
		{"A 3\n", Move{X: 3, Y: 10}},
		{"e E\n", Move{X: 14, Y: 14}},
		{"  4   9  \n", Move{X: 9, Y: 4}},
	}
	for _, tc := range cases {
		move, quit, err := ParseMoveInput(tc.input, DefaultBoardSize)
		if err != nil || quit {
			t.Fatalf("%q: unexpected err=%v quit=%v", tc.input, err, quit)
		}
		if !move.Equals(tc.move) {
			t.Fatalf("%q: got (%d,%d), want (%d,%d)", tc.input, move.X, move.Y, tc.move.X, tc.move.Y)
		}
	}
}

func TestParseMoveInputQuit(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n", " q \n"} {
		_, quit, err := ParseMoveInput(input, DefaultBoardSize)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", input, err)
		}
		if !quit {
			t.Fatalf("%q: expected quit", input)
		}
	}
}

func TestParseMoveInputRejectsGarbage(t *testing.T) {
	for _, input := range []string{"\n", "7\n", "7 7 7\n", "xx 3\n", "F 0\n", "7 F\n", "- 1\n"} {
		_, quit, err := ParseMoveInput(input, DefaultBoardSize)
		if quit {
			t.Fatalf("%q: unexpected quit", input)
		}
		if err == nil {
			t.Fatalf("%q: expected a parse error", input)
		}
	}
}

func TestCoordFromByte(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'0', 0}, {'9', 9}, {'A', 10}, {'a', 10}, {'E', 14}, {'e', 14},
	}
	for _, tc := range cases {
		got, err := coordFromByte(tc.b, DefaultBoardSize)
		if err != nil {
			t.Fatalf("%c: unexpected error %v", tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("%c: got %d, want %d", tc.b, got, tc.want)
		}
	}
	if _, err := coordFromByte('F', DefaultBoardSize); err == nil {
		t.Fatalf("F is off a 15x15 board, expected an error")
	}
	if _, err := coordFromByte('?', DefaultBoardSize); err == nil {
		t.Fatalf("expected an error for a non-coordinate byte")
	}
}

func TestCoordLabel(t *testing.T) {
	if got := coordLabel(0); got != " 0" {
		t.Fatalf("label 0: %q", got)
	}
	if got := coordLabel(9); got != " 9" {
		t.Fatalf("label 9: %q", got)
	}
	if got := coordLabel(10); got != " A" {
		t.Fatalf("label 10: %q", got)
	}
	if got := coordLabel(14); got != " E" {
		t.Fatalf("label 14: %q", got)
	}
}

func TestRenderBoardShowsStonesAndLabels(t *testing.T) {
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	state.Board.Set(7, 7, CellBlack)
	state.Board.Set(8, 7, CellWhite)

	out := RenderBoard(state, settings)
	if !strings.Contains(out, appTitle) {
		t.Fatalf("missing title banner")
	}
	if !strings.Contains(out, "v"+appVersion) {
		t.Fatalf("missing version line")
	}
	if !strings.Contains(out, "●") || !strings.Contains(out, "○") {
		t.Fatalf("stones not rendered")
	}
	if !strings.Contains(out, " E") {
		t.Fatalf("missing letter coordinate label")
	}
	if !strings.Contains(out, "AI Difficulty Medium") {
		t.Fatalf("missing difficulty footer in PvAI mode")
	}
}

func TestRenderBoardHighlightsWinningLine(t *testing.T) {
	settings := pvpSettings()
	state := DefaultGameState(settings)
	for x := 3; x <= 7; x++ {
		state.Board.Set(x, 7, CellBlack)
		state.WinningLine = append(state.WinningLine, Move{X: x, Y: 7})
	}
	out := RenderBoard(state, settings)
	if strings.Count(out, "◉") != 5 {
		t.Fatalf("expected 5 highlighted stones, got %d", strings.Count(out, "◉"))
	}
	if strings.Contains(out, "AI Difficulty") {
		t.Fatalf("difficulty footer should not appear in PvP mode")
	}
}

func TestConsoleQuitImmediately(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	in := strings.NewReader("q\n")
	var out strings.Builder
	console := NewConsole(controller, nil, nil, in, &out)

	mode := ModePvP
	if err := console.Run(&mode, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Game over.") {
		t.Fatalf("missing quit message, output: %q", out.String())
	}
}

func TestConsolePlaysFullGame(t *testing.T) {
	controller := NewGameController(DefaultGameSettings())
	// Black wins with a horizontal five on row 7; white wastes moves on
	// row 0. Final "n" declines the rematch.
	var input strings.Builder
	for i := 0; i < 4; i++ {
		input.WriteString("7 " + string(rune('3'+i)) + "\n")
		input.WriteString("0 " + string(rune('0'+i)) + "\n")
	}
	input.WriteString("7 7\n")
	input.WriteString("n\n")

	var out strings.Builder
	console := NewConsole(controller, nil, nil, strings.NewReader(input.String()), &out)
	mode := ModePvP
	if err := console.Run(&mode, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Player Black wins!") {
		t.Fatalf("missing win announcement, output tail: %q", tail(out.String(), 400))
	}
	if !strings.Contains(out.String(), "Play again?") {
		t.Fatalf("missing rematch prompt")
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
