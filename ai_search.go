package main

import "math/rand"

const (
	// proximityRadius bounds candidate moves to a Chebyshev neighborhood
	// of existing stones, collapsing the branching factor from the whole
	// board to a small frontier.
	proximityRadius = 2

	// scoreInf bounds every reachable heuristic value; used for the
	// initial alpha/beta window.
	scoreInf = 1 << 30
)

// hasNeighborStone reports whether any stone sits within proximityRadius
// of (x,y), window clipped to the board.
func hasNeighborStone(board Board, x, y int) bool {
	for dy := -proximityRadius; dy <= proximityRadius; dy++ {
		for dx := -proximityRadius; dx <= proximityRadius; dx++ {
			nx := x + dx
			ny := y + dy
			if !board.InBounds(nx, ny) {
				continue
			}
			if board.At(nx, ny) != CellEmpty {
				return true
			}
		}
	}
	return false
}

func isCandidate(board Board, x, y int) bool {
	return board.IsEmpty(x, y) && hasNeighborStone(board, x, y)
}

// minimax explores candidate moves to the given depth with alpha-beta
// pruning and returns the best achievable score for maxPlayer. Candidates
// are visited in row-major order, which fixes the tie-break. Every
// simulated stone is removed before the function returns, including on a
// cutoff, so the board is unchanged afterwards. Depth 0 returns the static
// evaluation without enumerating moves; so does a node with no candidates.
//
// The recursion relies on the heuristic alone: it does not run the exact
// win check on simulated positions. A dense non-winning cluster can
// therefore hit the winRunScore band.
func minimax(board *Board, depth, alpha, beta int, maximizing bool, maxPlayer PlayerColor) int {
	if depth <= 0 {
		return EvaluateBoard(*board, maxPlayer)
	}
	mover := maxPlayer
	if !maximizing {
		mover = otherPlayer(maxPlayer)
	}
	cell := CellFromPlayer(mover)
	size := board.Size()
	explored := false
	if maximizing {
		best := -scoreInf
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if !isCandidate(*board, x, y) {
					continue
				}
				explored = true
				board.Set(x, y, cell)
				score := minimax(board, depth-1, alpha, beta, false, maxPlayer)
				board.Remove(x, y)
				if score > best {
					best = score
				}
				if score > alpha {
					alpha = score
				}
				if beta <= alpha {
					return best
				}
			}
		}
		if !explored {
			return EvaluateBoard(*board, maxPlayer)
		}
		return best
	}
	best := scoreInf
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !isCandidate(*board, x, y) {
				continue
			}
			explored = true
			board.Set(x, y, cell)
			score := minimax(board, depth-1, alpha, beta, true, maxPlayer)
			board.Remove(x, y)
			if score < best {
				best = score
			}
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				return best
			}
		}
	}
	if !explored {
		return EvaluateBoard(*board, maxPlayer)
	}
	return best
}

// SelectMove picks the best move for player at the given search depth.
// Candidates are tried in row-major order and only a strictly greater
// score replaces the current best, so the result is deterministic for a
// fixed board and depth. The board is restored before returning.
//
// A full board returns ErrBoardFull. A board with stones but no candidate
// within proximityRadius cannot occur in practice; if it does, and on a
// board with no stones at all, the documented fallback is the empty cell
// nearest the center rather than an error.
func SelectMove(board *Board, player PlayerColor, depth int) (Move, error) {
	if board.IsFull() {
		return Move{}, ErrBoardFull
	}
	cell := CellFromPlayer(player)
	size := board.Size()
	best := Move{X: -1, Y: -1}
	bestScore := -scoreInf
	found := false
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !isCandidate(*board, x, y) {
				continue
			}
			board.Set(x, y, cell)
			score := minimax(board, depth-1, -scoreInf, scoreInf, false, player)
			board.Remove(x, y)
			if !found || score > bestScore {
				found = true
				bestScore = score
				best = Move{X: x, Y: y}
			}
		}
	}
	if !found {
		fallback, ok := nearestEmptyToCenter(*board)
		if !ok {
			return Move{}, ErrBoardFull
		}
		return fallback, nil
	}
	return best, nil
}

// OpeningMove handles the empty-board case that has no candidates under
// the proximity rule: a cell at or adjacent to the board center. This is
// the only place randomness is allowed.
func OpeningMove(board Board) Move {
	center := board.Size() / 2
	x := center + rand.Intn(3) - 1
	y := center + rand.Intn(3) - 1
	if board.IsEmpty(x, y) {
		return Move{X: x, Y: y}
	}
	if fallback, ok := nearestEmptyToCenter(board); ok {
		return fallback
	}
	return Move{X: center, Y: center}
}

// nearestEmptyToCenter returns the empty cell with the smallest Chebyshev
// distance to the center, row-major first on ties.
func nearestEmptyToCenter(board Board) (Move, bool) {
	center := board.Size() / 2
	best := Move{X: -1, Y: -1}
	bestDist := -1
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != CellEmpty {
				continue
			}
			dist := chebyshev(x-center, y-center)
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = Move{X: x, Y: y}
			}
		}
	}
	return best, bestDist >= 0
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
