package main

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
)

// GameEvent is the fire-and-forget telemetry record published per game
// action. It is not a game save: nothing is ever read back.
type GameEvent struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	GameID    string         `json:"game_id"`
	Data      map[string]any `json:"data"`
}

const (
	EventGameStart = "game_start"
	EventMove      = "move"
	EventGameEnd   = "game_end"
)

// EventProducer publishes game events to Kafka. A nil producer is valid
// and drops everything, so call sites do not need to guard on config.
type EventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventProducer(brokers []string, topic string) (*EventProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &EventProducer{producer: producer, topic: topic}, nil
}

func (p *EventProducer) SendEvent(event GameEvent) error {
	if p == nil {
		return nil
	}
	event.Timestamp = time.Now()
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.GameID),
		Value: sarama.ByteEncoder(payload),
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

func (p *EventProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

func GameStartEvent(gameID string, settings GameSettings) GameEvent {
	return GameEvent{
		Type:   EventGameStart,
		GameID: gameID,
		Data: map[string]any{
			"board_size": settings.BoardSize,
			"mode":       modeLabel(settings.Mode),
			"difficulty": settings.Difficulty.String(),
		},
	}
}

func MoveEvent(gameID string, entry HistoryEntry) GameEvent {
	return GameEvent{
		Type:   EventMove,
		GameID: gameID,
		Data: map[string]any{
			"player":     entry.Player.String(),
			"x":          entry.Move.X,
			"y":          entry.Move.Y,
			"is_ai":      entry.IsAi,
			"elapsed_ms": entry.ElapsedMs,
			"depth":      entry.Depth,
		},
	}
}

func GameEndEvent(gameID string, status GameStatus, moves int) GameEvent {
	return GameEvent{
		Type:   EventGameEnd,
		GameID: gameID,
		Data: map[string]any{
			"status": statusToString(status),
			"winner": winnerFromStatus(status),
			"moves":  moves,
		},
	}
}

func modeLabel(mode GameMode) string {
	if mode == ModePvP {
		return "pvp"
	}
	return "pvai"
}
