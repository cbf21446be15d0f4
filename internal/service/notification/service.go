package notification

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"

	telegram_client "github.com/isergeich22/twitch-bot/internal/client/telegram-client"
)

// notifications are removed from the chat after this delay
const deleteNotificationAfter = 4 * time.Hour

type telegramClient interface {
	SendPhoto(ctx context.Context, photo tgbotapi.PhotoConfig) (int, error)
	DeleteMessage(ctx context.Context, deleteConfig tgbotapi.DeleteMessageConfig) error
}

type TelegramNotificationService struct {
	telegramClient telegramClient
	destination    telegram_client.Destination
	clock          clockwork.Clock
}

func NewTelegramNotificationService(
	telegramClient telegramClient,
	destination telegram_client.Destination,
) *TelegramNotificationService {
	return &TelegramNotificationService{
		telegramClient: telegramClient,
		destination:    destination,
		clock:          clockwork.NewRealClock(),
	}
}

// ScheduledDelete is the handle of one pending notification removal.
type ScheduledDelete struct {
	MessageID int
	timer     clockwork.Timer
}

// Cancel stops the pending removal. It reports whether the timer was
// still pending.
func (sd *ScheduledDelete) Cancel() bool {
	return sd.timer.Stop()
}
