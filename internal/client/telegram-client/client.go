package telegram_client

import (
	"context"
	"strconv"
	"strings"

	tgBotApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramClient struct {
	bot *tgBotApi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgBotApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramClient{
		bot: bot,
	}, nil
}

func (tc *TelegramClient) SendPhoto(ctx context.Context, photo tgBotApi.PhotoConfig) (messageID int, err error) {
	msg, err := tc.bot.Send(photo)
	if err != nil {
		return 0, err
	}

	return msg.MessageID, nil
}

func (tc *TelegramClient) DeleteMessage(ctx context.Context, deleteConfig tgBotApi.DeleteMessageConfig) error {
	_, err := tc.bot.Request(deleteConfig)

	return err
}

// Destination addresses a telegram chat either by its numeric id
// or by a public channel name.
type Destination struct {
	ChatID          int64
	ChannelUsername string
}

// ParseDestination accepts a numeric chat id or a channel name,
// with or without the leading "@".
func ParseDestination(raw string) Destination {
	raw = strings.TrimSpace(raw)

	if chatID, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Destination{ChatID: chatID}
	}

	if !strings.HasPrefix(raw, "@") {
		raw = "@" + raw
	}

	return Destination{ChannelUsername: raw}
}
