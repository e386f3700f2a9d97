package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameMode int

const (
	ModePvP GameMode = iota
	ModePvAI
)

// Difficulty fixes the search depth for a whole game. It is chosen once
// at configuration time and threaded explicitly into move selection.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 3
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

type GameSettings struct {
	BoardSize   int        `json:"board_size"`
	WinLength   int        `json:"win_length"`
	Mode        GameMode   `json:"mode"`
	Difficulty  Difficulty `json:"difficulty"`
	BlackType   PlayerType `json:"-"`
	WhiteType   PlayerType `json:"-"`
	BlackStarts bool       `json:"black_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:   DefaultBoardSize,
		WinLength:   5,
		Mode:        ModePvAI,
		Difficulty:  DifficultyMedium,
		BlackType:   PlayerHuman,
		WhiteType:   PlayerAI,
		BlackStarts: true,
	}
}

// ApplyMode keeps the per-color player types consistent with the mode.
// In PvAI mode the human always holds black and moves first.
func (s *GameSettings) ApplyMode(mode GameMode) {
	s.Mode = mode
	if mode == ModePvP {
		s.BlackType = PlayerHuman
		s.WhiteType = PlayerHuman
		return
	}
	s.BlackType = PlayerHuman
	s.WhiteType = PlayerAI
}
