package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// AIPlayer selects moves with the bounded minimax search. The search depth
// is fixed when the player is created and never changes mid-game.
type AIPlayer struct {
	depth int
}

func NewAIPlayer(difficulty Difficulty) *AIPlayer {
	return &AIPlayer{depth: difficulty.Depth()}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Depth() int {
	return a.depth
}

// ChooseMove runs synchronously to completion; the caller waits. The state
// it receives is a clone, and the search restores its board anyway.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	board := state.Board
	if board.Stones() == 0 {
		move := OpeningMove(board)
		move.Depth = a.depth
		return move
	}
	start := time.Now()
	move, err := SelectMove(&board, state.ToMove, a.depth)
	if err != nil {
		if errors.Is(err, ErrBoardFull) {
			log.Warn().Msg("move requested on a full board")
		} else {
			log.Error().Err(err).Msg("move selection failed")
		}
		return Move{X: -1, Y: -1}
	}
	log.Debug().
		Int("depth", a.depth).
		Int("x", move.X).
		Int("y", move.Y).
		Dur("took", time.Since(start)).
		Str("player", state.ToMove.String()).
		Msg("ai move selected")
	move.Depth = a.depth
	return move
}
