package formater

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CreateTelegramSingleButtonLinkForPhoto attaches a one-button inline
// keyboard with the given link to a photo message.
func CreateTelegramSingleButtonLinkForPhoto(msg tgbotapi.PhotoConfig, link, text string) tgbotapi.PhotoConfig {

	board := make([][]tgbotapi.InlineKeyboardButton, 1)
	for i := range board {
		board[i] = make([]tgbotapi.InlineKeyboardButton, 1)
	}

	board[0][0].Text = text
	board[0][0].URL = &link

	msg.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: board,
	}

	return msg
}
