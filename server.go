package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	GameID      string            `json:"game_id"`
	Mode        string            `json:"mode"`
	Difficulty  string            `json:"difficulty"`
	NextPlayer  int               `json:"next_player"`
	Winner      int               `json:"winner"`
	BoardSize   int               `json:"board_size"`
	Status      string            `json:"status"`
	Board       [][]int           `json:"board"`
	History     []historyEntryDTO `json:"history"`
	WinningLine []Move            `json:"winning_line"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	Depth     int     `json:"depth"`
}

// newSpectatorRouter exposes the read-only observation surface: liveness,
// a status snapshot and the spectate websocket.
func newSpectatorRouter(controller *GameController, hub *Hub) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})
	r.Get("/ws/spectate", func(w http.ResponseWriter, r *http.Request) {
		serveSpectatorWS(hub, controller, w, r)
	})
	return r
}

func serveSpectatorWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		GameID:      controller.GameID(),
		Mode:        modeLabel(settings.Mode),
		Difficulty:  settings.Difficulty.String(),
		NextPlayer:  playerToInt(state.ToMove),
		Winner:      winnerFromStatus(state.Status),
		BoardSize:   state.Board.Size(),
		Status:      statusToString(state.Status),
		Board:       boardToSlice(state.Board),
		History:     historyToDTO(controller.History()),
		WinningLine: state.WinningLine,
	}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		row := make([]int, size)
		for x := 0; x < size; x++ {
			row[x] = cellToInt(board.At(x, y))
		}
		rows[y] = row
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryToDTO(entry))
	}
	return out
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:         entry.Move.X,
		Y:         entry.Move.Y,
		Player:    playerToInt(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
		Depth:     entry.Depth,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
