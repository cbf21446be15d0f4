package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	telegram_client "github.com/isergeich22/twitch-bot/internal/client/telegram-client"
	"github.com/isergeich22/twitch-bot/internal/models"
)

type fakeTelegramClient struct {
	mu      sync.Mutex
	photos  []tgbotapi.PhotoConfig
	deletes []tgbotapi.DeleteMessageConfig
	deleted chan tgbotapi.DeleteMessageConfig

	sendErr   error
	deleteErr error
	messageID int
}

func newFakeTelegramClient(messageID int) *fakeTelegramClient {
	return &fakeTelegramClient{
		deleted:   make(chan tgbotapi.DeleteMessageConfig, 1),
		messageID: messageID,
	}
}

func (f *fakeTelegramClient) SendPhoto(ctx context.Context, photo tgbotapi.PhotoConfig) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return 0, f.sendErr
	}

	f.photos = append(f.photos, photo)

	return f.messageID, nil
}

func (f *fakeTelegramClient) DeleteMessage(ctx context.Context, deleteConfig tgbotapi.DeleteMessageConfig) error {
	f.mu.Lock()
	f.deletes = append(f.deletes, deleteConfig)
	f.mu.Unlock()

	f.deleted <- deleteConfig

	return f.deleteErr
}

func (f *fakeTelegramClient) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.deletes)
}

func streamInfo() models.StreamInfo {
	return models.StreamInfo{
		UserName:  "SomeChannel",
		UserLogin: "somechannel",
		Title:     "long awaited stream",
		Category:  "Just Chatting",
		StartTime: "21:30 05/03/2024",
		Image:     "https://x/1920x1080.jpg",
		Viewers:   42,
	}
}

func newTestService(client *fakeTelegramClient, destination telegram_client.Destination) (*TelegramNotificationService, clockwork.FakeClock) {
	service := NewTelegramNotificationService(client, destination)

	clock := clockwork.NewFakeClock()
	service.clock = clock

	return service, clock
}

func TestThrowNotification_BuildsPhotoMessage(t *testing.T) {
	client := newFakeTelegramClient(77)
	service, _ := newTestService(client, telegram_client.Destination{ChatID: 42})

	handle, err := service.ThrowNotification(context.Background(), streamInfo())
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Equal(t, 77, handle.MessageID)

	require.Len(t, client.photos, 1)
	photo := client.photos[0]

	assert.Equal(t, int64(42), photo.ChatID)
	assert.Equal(t, tgbotapi.FileURL("https://x/1920x1080.jpg"), photo.File)
	assert.Equal(t, tgbotapi.ModeHTML, photo.ParseMode)

	assert.Contains(t, photo.Caption, "SomeChannel is online!")
	assert.Contains(t, photo.Caption, "<b>Title:</b> long awaited stream")
	assert.Contains(t, photo.Caption, "<b>Category:</b> Just Chatting")
	assert.Contains(t, photo.Caption, "<b>Started:</b> 21:30 05/03/2024")
	assert.Contains(t, photo.Caption, "<b>Viewers:</b> 42")

	markup, ok := photo.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.NotNil(t, markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://www.twitch.tv/somechannel", *markup.InlineKeyboard[0][0].URL)
}

func TestThrowNotification_EscapesCaption(t *testing.T) {
	client := newFakeTelegramClient(77)
	service, _ := newTestService(client, telegram_client.Destination{ChatID: 42})

	info := streamInfo()
	info.Title = "creepy <tags> & such"

	_, err := service.ThrowNotification(context.Background(), info)
	require.NoError(t, err)

	require.Len(t, client.photos, 1)
	assert.Contains(t, client.photos[0].Caption, "creepy &lt;tags&gt; &amp; such")
}

func TestThrowNotification_ChannelDestination(t *testing.T) {
	client := newFakeTelegramClient(77)
	service, _ := newTestService(client, telegram_client.Destination{ChannelUsername: "@somepublicchannel"})

	_, err := service.ThrowNotification(context.Background(), streamInfo())
	require.NoError(t, err)

	require.Len(t, client.photos, 1)
	assert.Equal(t, "@somepublicchannel", client.photos[0].ChannelUsername)
	assert.Zero(t, client.photos[0].ChatID)
}

func TestThrowNotification_SendFailure(t *testing.T) {
	client := newFakeTelegramClient(0)
	client.sendErr = errors.New("telegram unavailable")

	service, clock := newTestService(client, telegram_client.Destination{ChatID: 42})

	handle, err := service.ThrowNotification(context.Background(), streamInfo())
	require.Error(t, err)
	assert.Nil(t, handle)

	// nothing was scheduled
	clock.Advance(deleteNotificationAfter + time.Minute)
	assert.Zero(t, client.deleteCount())
}

func TestScheduledDelete_FiresAfterDelay(t *testing.T) {
	client := newFakeTelegramClient(77)
	service, clock := newTestService(client, telegram_client.Destination{ChatID: 42})

	_, err := service.ThrowNotification(context.Background(), streamInfo())
	require.NoError(t, err)

	clock.Advance(deleteNotificationAfter - time.Minute)
	assert.Zero(t, client.deleteCount())

	clock.Advance(2 * time.Minute)

	select {
	case deleteConfig := <-client.deleted:
		assert.Equal(t, int64(42), deleteConfig.ChatID)
		assert.Equal(t, 77, deleteConfig.MessageID)
	case <-time.After(time.Second):
		t.Fatal("delete was not triggered")
	}

	assert.Equal(t, 1, client.deleteCount())
}

func TestScheduledDelete_Cancel(t *testing.T) {
	client := newFakeTelegramClient(77)
	service, clock := newTestService(client, telegram_client.Destination{ChatID: 42})

	handle, err := service.ThrowNotification(context.Background(), streamInfo())
	require.NoError(t, err)

	assert.True(t, handle.Cancel())

	clock.Advance(deleteNotificationAfter + time.Minute)

	select {
	case <-client.deleted:
		t.Fatal("cancelled delete still fired")
	case <-time.After(100 * time.Millisecond):
	}
}
