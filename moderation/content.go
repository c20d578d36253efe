package moderation

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Kind string

const (
	KindText      Kind = "text"
	KindPhoto     Kind = "photo"
	KindVideo     Kind = "video"
	KindAnimation Kind = "animation"
	KindDocument  Kind = "document"
	KindAudio     Kind = "audio"
	KindVoice     Kind = "voice"
)

// Content — контент предложения, ровно один вид на сообщение.
// Для текста заполнен Text, для медиа — FileID и, возможно, Caption.
type Content struct {
	Kind    Kind
	FileID  string
	Text    string
	Caption string
}

// FromMessage определяет вид контента сообщения.
// Анимация проверяется раньше документа: Telegram присылает её с обоими полями.
// Возвращает false, если поддерживаемого контента нет.
func FromMessage(msg *models.Message) (Content, bool) {
	switch {
	case len(msg.Photo) > 0:
		return Content{Kind: KindPhoto, FileID: msg.Photo[len(msg.Photo)-1].FileID, Caption: msg.Caption}, true
	case msg.Video != nil:
		return Content{Kind: KindVideo, FileID: msg.Video.FileID, Caption: msg.Caption}, true
	case msg.Animation != nil:
		return Content{Kind: KindAnimation, FileID: msg.Animation.FileID, Caption: msg.Caption}, true
	case msg.Document != nil:
		return Content{Kind: KindDocument, FileID: msg.Document.FileID, Caption: msg.Caption}, true
	case msg.Audio != nil:
		return Content{Kind: KindAudio, FileID: msg.Audio.FileID, Caption: msg.Caption}, true
	case msg.Voice != nil:
		return Content{Kind: KindVoice, FileID: msg.Voice.FileID, Caption: msg.Caption}, true
	case msg.Text != "":
		return Content{Kind: KindText, Text: msg.Text}, true
	}
	return Content{}, false
}

// Send отправляет контент в чат. Единая точка диспетчеризации по виду:
// ей пользуются и рассылка админам, и публикация в канал.
func Send(ctx context.Context, s Sender, chatID int64, c Content, markup models.ReplyMarkup) (*models.Message, error) {
	switch c.Kind {
	case KindText:
		return s.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        c.Text,
			ReplyMarkup: markup,
		})
	case KindPhoto:
		return s.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	case KindVideo:
		return s.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:      chatID,
			Video:       &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	case KindAnimation:
		return s.SendAnimation(ctx, &bot.SendAnimationParams{
			ChatID:      chatID,
			Animation:   &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	case KindDocument:
		return s.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:      chatID,
			Document:    &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	case KindAudio:
		return s.SendAudio(ctx, &bot.SendAudioParams{
			ChatID:      chatID,
			Audio:       &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	case KindVoice:
		return s.SendVoice(ctx, &bot.SendVoiceParams{
			ChatID:      chatID,
			Voice:       &models.InputFileString{Data: c.FileID},
			Caption:     c.Caption,
			ReplyMarkup: markup,
		})
	}
	return nil, fmt.Errorf("неизвестный вид контента %q", c.Kind)
}
