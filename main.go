package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const appVersion = "0.1.2"

func main() {
	versionFlag := flag.Bool("version", false, "print version information and exit")
	pvpFlag := flag.Bool("pvp", false, "start directly in player vs player mode")
	pvaiFlag := flag.Bool("pvai", false, "start directly in player vs AI mode (medium difficulty)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", appTitle, appVersion)
		return
	}

	config := LoadConfig()
	configStore.Update(config)
	setupLogging(config.LogLevel)

	var mode *GameMode
	var difficulty *Difficulty
	if *pvpFlag {
		m := ModePvP
		mode = &m
	} else if *pvaiFlag {
		m := ModePvAI
		d := DifficultyMedium
		mode = &m
		difficulty = &d
	}

	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()

	var producer *EventProducer
	if len(config.KafkaBrokers) > 0 {
		var err error
		producer, err = NewEventProducer(config.KafkaBrokers, config.KafkaTopic)
		if err != nil {
			log.Warn().Err(err).Msg("analytics disabled: kafka producer unavailable")
			producer = nil
		} else {
			defer func() {
				if err := producer.Close(); err != nil {
					log.Warn().Err(err).Msg("closing analytics producer")
				}
			}()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var server *http.Server
	if config.SpectatorEnabled {
		go hub.Run(ctx.Done())
		server = &http.Server{
			Addr:    config.ListenAddr,
			Handler: newSpectatorRouter(controller, hub),
		}
		go func() {
			log.Info().Str("addr", config.ListenAddr).Msg("spectator server listening")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("spectator server failed")
			}
		}()
	}

	console := NewConsole(controller, hub, producer, os.Stdin, os.Stdout)
	if err := console.Run(mode, difficulty); err != nil {
		log.Error().Err(err).Msg("game loop failed")
	}

	if server != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("spectator server shutdown failed")
			_ = server.Close()
		}
	}
}
