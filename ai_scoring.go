package main

// runShape keys the scoring table: contiguous run length through a stone
// along one direction, and how many of the run's two ends are blocked by
// the board edge or an opponent stone.
type runShape struct {
	count   int
	blocked int
}

// winRunScore is the band for five or more in a row. It is a heuristic
// magnitude, not a win signal: it can stack across directions and across
// stones, so only the exact win detector in Rules may end a game.
const winRunScore = 100000

// runScores is the fixed evaluation table. Shapes not listed score zero.
var runScores = map[runShape]int{
	{count: 4, blocked: 0}: 10000,
	{count: 4, blocked: 1}: 1000,
	{count: 3, blocked: 0}: 1000,
	{count: 3, blocked: 1}: 100,
	{count: 2, blocked: 0}: 100,
}

// scanRun measures the contiguous run of cell through (x,y) along (dx,dy),
// walking up to four steps each way. It returns the run length including
// the origin and the number of blocked ends in {0,1,2}. A side stopped by
// an empty cell is an open end and does not count as blocked. Pure.
func scanRun(board Board, x, y, dx, dy int, cell Cell) (int, int) {
	count := 1
	blocked := 0
	for side := 0; side < 2; side++ {
		sx := dx
		sy := dy
		if side == 1 {
			sx = -dx
			sy = -dy
		}
		for i := 1; i <= 4; i++ {
			nx := x + sx*i
			ny := y + sy*i
			if !board.InBounds(nx, ny) {
				blocked++
				break
			}
			at := board.At(nx, ny)
			if at == cell {
				count++
				continue
			}
			if at != CellEmpty {
				blocked++
			}
			break
		}
	}
	return count, blocked
}

// EvaluatePoint scores the stone at (x,y) for player by summing the table
// value of its run shape over the four directions.
func EvaluatePoint(board Board, x, y int, player PlayerColor) int {
	cell := CellFromPlayer(player)
	score := 0
	for i := 0; i < 4; i++ {
		count, blocked := scanRun(board, x, y, lineDirections[i][0], lineDirections[i][1], cell)
		if count >= 5 {
			score += winRunScore
			continue
		}
		score += runScores[runShape{count: count, blocked: blocked}]
	}
	return score
}

// EvaluateBoard is the static whole-board heuristic: positive favors
// player. It adds EvaluatePoint over player's stones and subtracts it over
// the opponent's, so swapping the player negates the score.
func EvaluateBoard(board Board, player PlayerColor) int {
	own := CellFromPlayer(player)
	size := board.Size()
	score := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			at := board.At(x, y)
			if at == CellEmpty {
				continue
			}
			owner, _ := PlayerFromCell(at)
			if at == own {
				score += EvaluatePoint(board, x, y, owner)
			} else {
				score -= EvaluatePoint(board, x, y, owner)
			}
		}
	}
	return score
}
