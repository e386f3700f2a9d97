package main

import "errors"

var (
	// ErrIllegalMove covers out-of-bounds coordinates and occupied cells.
	ErrIllegalMove = errors.New("illegal move")
	// ErrBoardFull is returned when move selection is asked for a move on
	// a board with no empty cell left. The caller is expected to have
	// declared a draw before reaching this.
	ErrBoardFull = errors.New("board full")
)
