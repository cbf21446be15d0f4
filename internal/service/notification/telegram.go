package notification

import (
	"context"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/isergeich22/twitch-bot/internal/models"
	formater "github.com/isergeich22/twitch-bot/internal/utils/formater"
)

const watchButtonText = "Watch the stream"

// ThrowNotification sends the live-stream photo notification and schedules
// its removal. The returned handle can cancel the pending removal.
func (tn *TelegramNotificationService) ThrowNotification(ctx context.Context, info models.StreamInfo) (*ScheduledDelete, error) {

	photo := tgbotapi.PhotoConfig{
		BaseFile: tgbotapi.BaseFile{
			BaseChat: tgbotapi.BaseChat{
				ChatID:          tn.destination.ChatID,
				ChannelUsername: tn.destination.ChannelUsername,
			},
			File: tgbotapi.FileURL(info.Image),
		},
	}

	photo.Caption = prepareCaption(info)

	twitchLink := fmt.Sprintf("%s/%s", models.TwitchWWWSchemeHost, info.UserLogin)
	photo = formater.CreateTelegramSingleButtonLinkForPhoto(photo, twitchLink, watchButtonText)

	photo.ParseMode = tgbotapi.ModeHTML

	messageID, err := tn.telegramClient.SendPhoto(ctx, photo)
	if err != nil {
		return nil, errors.Wrap(err, "SendPhoto")
	}

	logrus.Infof("stream notification sent, message id %d", messageID)

	return tn.scheduleDelete(messageID), nil
}

func (tn *TelegramNotificationService) scheduleDelete(messageID int) *ScheduledDelete {

	timer := tn.clock.AfterFunc(deleteNotificationAfter, func() {
		deleteConfig := tgbotapi.DeleteMessageConfig{
			ChatID:          tn.destination.ChatID,
			ChannelUsername: tn.destination.ChannelUsername,
			MessageID:       messageID,
		}

		err := tn.telegramClient.DeleteMessage(context.Background(), deleteConfig)
		if err != nil {
			logrus.Errorf("could not delete notification %d: %v", messageID, err)
			return
		}

		logrus.Infof("notification %d deleted", messageID)
	})

	return &ScheduledDelete{
		MessageID: messageID,
		timer:     timer,
	}
}

func prepareCaption(info models.StreamInfo) string {
	return fmt.Sprintf(`<b>[Twitch]</b> %s is online!

<b>Title:</b> %s
<b>Category:</b> %s
<b>Started:</b> %s
<b>Viewers:</b> %d`,
		html.EscapeString(info.UserName),
		html.EscapeString(info.Title),
		html.EscapeString(info.Category),
		info.StartTime,
		info.Viewers,
	)
}
