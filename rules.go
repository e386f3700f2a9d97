package main

import "fmt"

// The four line directions: horizontal, vertical and the two diagonals.
// Every scan walks both ways along a direction, so four entries cover all
// eight rays.
var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move Move) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

// IsWin reports whether the stone at lastMove completes an alignment of
// WinLength or more. It is exact and only looks at lines through lastMove.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	_, ok := r.FindWinningLine(board, lastMove)
	return ok
}

// FindWinningLine returns the decisive cells when the stone at lastMove
// completes five (or more) in a row: the origin first, then the cells
// walked in the positive direction, then the negative direction, truncated
// to WinLength. The first direction that reaches WinLength wins; the rest
// are not checked.
func (r Rules) FindWinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return nil, false
	}
	target := board.At(lastMove.X, lastMove.Y)
	if target == CellEmpty {
		return nil, false
	}
	winLen := r.settings.WinLength
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		line := make([]Move, 0, winLen)
		line = append(line, Move{X: lastMove.X, Y: lastMove.Y})
		line = r.collectRun(board, lastMove, dx, dy, target, line)
		line = r.collectRun(board, lastMove, -dx, -dy, target, line)
		if len(line) >= winLen {
			return line[:winLen], true
		}
	}
	return nil, false
}

func (r Rules) IsDraw(board Board) bool {
	return board.IsFull()
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

// collectRun appends the contiguous same-owner cells next to start along
// (dx,dy), walking at most WinLength-1 steps.
func (r Rules) collectRun(board Board, start Move, dx, dy int, target Cell, line []Move) []Move {
	for i := 1; i < r.settings.WinLength; i++ {
		x := start.X + dx*i
		y := start.Y + dy*i
		if !board.InBounds(x, y) || board.At(x, y) != target {
			break
		}
		line = append(line, Move{X: x, Y: y})
	}
	return line
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
