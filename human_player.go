package main

type HumanPlayer struct {
	pending     bool
	pendingMove Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

// ChooseMove is never called for humans; their moves arrive as pending
// moves submitted by the input layer.
func (h *HumanPlayer) ChooseMove(GameState, Rules) Move {
	return Move{X: -1, Y: -1}
}

func (h *HumanPlayer) SetPendingMove(move Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() Move {
	h.pending = false
	return h.pendingMove
}
