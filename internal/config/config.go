// Package config loads the typed process configuration from the environment.
package config

import (
	"os"

	"github.com/pkg/errors"
)

const (
	defaultStateFile = "last_stream_id.txt"
	defaultLogFile   = "bot.log"
	defaultDebugAddr = "localhost:8084"
)

type Config struct {
	StreamClientID     string
	StreamClientSecret string
	StreamChannelLogin string
	ChatBotToken       string
	ChatDestinationID  string

	StateFile string
	LogFile   string
	DebugAddr string
}

func Load() (*Config, error) {
	cfg := &Config{
		StreamClientID:     os.Getenv("STREAM_CLIENT_ID"),
		StreamClientSecret: os.Getenv("STREAM_CLIENT_SECRET"),
		StreamChannelLogin: os.Getenv("STREAM_CHANNEL_LOGIN"),
		ChatBotToken:       os.Getenv("CHAT_BOT_TOKEN"),
		ChatDestinationID:  os.Getenv("CHAT_DESTINATION_ID"),
		StateFile:          os.Getenv("STATE_FILE"),
		LogFile:            os.Getenv("LOG_FILE"),
		DebugAddr:          os.Getenv("DEBUG_ADDR"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"STREAM_CLIENT_ID", cfg.StreamClientID},
		{"STREAM_CLIENT_SECRET", cfg.StreamClientSecret},
		{"STREAM_CHANNEL_LOGIN", cfg.StreamChannelLogin},
		{"CHAT_BOT_TOKEN", cfg.ChatBotToken},
		{"CHAT_DESTINATION_ID", cfg.ChatDestinationID},
	}

	for _, env := range required {
		if env.value == "" {
			return nil, errors.Errorf("missing required env %s", env.name)
		}
	}

	if cfg.StateFile == "" {
		cfg.StateFile = defaultStateFile
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}

	if cfg.DebugAddr == "" {
		cfg.DebugAddr = defaultDebugAddr
	}

	return cfg, nil
}
