package main

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config carries the process-level knobs: observability surfaces and
// logging. Game rules and difficulty live in GameSettings, chosen per game.
type Config struct {
	ListenAddr       string
	SpectatorEnabled bool
	KafkaBrokers     []string
	KafkaTopic       string
	LogLevel         string
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:       ":8080",
		SpectatorEnabled: false,
		KafkaBrokers:     nil,
		KafkaTopic:       "gobang-events",
		LogLevel:         "info",
	}
}

// LoadConfig reads the environment, after loading an optional .env file.
// A missing .env is not an error.
func LoadConfig() Config {
	_ = godotenv.Load()
	config := DefaultConfig()
	config.ListenAddr = getEnv("GOBANG_LISTEN_ADDR", config.ListenAddr)
	config.SpectatorEnabled = getEnvBool("GOBANG_SPECTATOR", config.SpectatorEnabled)
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		config.KafkaBrokers = strings.Split(brokers, ",")
	}
	config.KafkaTopic = getEnv("KAFKA_TOPIC", config.KafkaTopic)
	config.LogLevel = getEnv("GOBANG_LOG_LEVEL", config.LogLevel)
	return config
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
