package main

import (
	"encoding/json"
	"sync"
)

// Hub fans game status and move payloads out to connected spectator
// sockets. Spectators only watch; moves never arrive over the network.
type Hub struct {
	mu               sync.Mutex
	clients          map[*Client]struct{}
	broadcastStatus  chan StatusResponse
	broadcastHistory chan historyPayload
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[*Client]struct{}),
		broadcastStatus:  make(chan StatusResponse, 32),
		broadcastHistory: make(chan historyPayload, 32),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.broadcast(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastHistory:
			h.broadcast(wsMessage{Type: "history", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

// PublishStatus and PublishHistory drop payloads when the hub is saturated
// rather than stalling the game loop.
func (h *Hub) PublishStatus(payload StatusResponse) {
	select {
	case h.broadcastStatus <- payload:
	default:
	}
}

func (h *Hub) PublishHistory(payload historyPayload) {
	select {
	case h.broadcastHistory <- payload:
	default:
	}
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
