package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Game owns the canonical board state. Players only propose moves; every
// mutation of the live board goes through TryApplyMove.
type Game struct {
	id          string
	settings    GameSettings
	rules       Rules
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.id = uuid.NewString()
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	log.Info().
		Str("game_id", g.id).
		Str("black", playerTypeLabel(settings.BlackType)).
		Str("white", playerTypeLabel(settings.WhiteType)).
		Str("difficulty", settings.Difficulty.String()).
		Msg("game reset")
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) History() MoveHistory {
	return g.history
}

// TryApplyMove validates and applies a move for the side to move, then
// runs the exact win check from the placed stone and the draw check, in
// that order. Rejected moves leave the board unchanged.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if ok, reason := g.rules.IsLegal(g.state, move); !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	mover := g.state.ToMove
	g.state.Board.Set(move.X, move.Y, CellFromPlayer(mover))
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.LastMessage = ""
	g.state.WinningLine = nil
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    mover,
		ElapsedMs: elapsedMs,
		IsAi:      isAiMove,
		Depth:     move.Depth,
	})
	log.Info().
		Str("game_id", g.id).
		Str("player", mover.String()).
		Bool("ai", isAiMove).
		Int("x", move.X).
		Int("y", move.Y).
		Float64("elapsed_ms", elapsedMs).
		Msg("move played")

	if line, won := g.rules.FindWinningLine(g.state.Board, move); won {
		g.state.WinningLine = line
		if mover == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		log.Info().
			Str("game_id", g.id).
			Str("player", mover.String()).
			Msg("game won by alignment")
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		log.Info().Str("game_id", g.id).Msg("game drawn")
		return true, ""
	}
	g.state.ToMove = otherPlayer(mover)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move: a pending human move if one
// was submitted, or a synchronous AI move when it is the AI's turn.
// Returns whether a move was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if !ok || !human.HasPendingMove() {
			return false
		}
		applied, _ := g.TryApplyMove(human.TakePendingMove())
		return applied
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	if !move.IsValid(g.settings.BoardSize) {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer(g.settings.Difficulty)
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer(g.settings.Difficulty)
	}
}

func playerTypeLabel(t PlayerType) string {
	if t == PlayerAI {
		return "AI"
	}
	return "Human"
}
