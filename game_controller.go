package main

import "sync"

// GameController serializes access to the game between the console loop
// and the spectator server goroutines.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) GameID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.ID()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().Last()
}

func (gc *GameController) SubmitHumanMove(move Move) bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SubmitHumanMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) CurrentPlayerIsHuman() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.CurrentPlayerIsHuman()
}
