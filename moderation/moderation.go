// Package moderation реализует конвейер модерации предложений:
// приём, рассылку админам и обработку решений.
package moderation

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Имена счётчиков в хранилище статистики
const (
	StatSuggestions = "suggestions"
	StatApproved    = "approved"
	StatDeclined    = "declined"
)

// BanStore — набор заблокированных пользователей.
// Ban и Unban идемпотентны.
type BanStore interface {
	IsBanned(ctx context.Context, userID int64) (bool, error)
	Ban(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
	BannedCount(ctx context.Context) (int64, error)
}

// StatStore — долговременные счётчики.
// IncrementStat обязан быть атомарным: одновременные инкременты не теряются.
type StatStore interface {
	IncrementStat(ctx context.Context, key string) error
	GetStats(ctx context.Context) (map[string]int64, error)
}

// Sender — вызовы транспорта, которыми доставляется контент.
// *bot.Bot реализует интерфейс.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendAnimation(ctx context.Context, params *bot.SendAnimationParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	SendAudio(ctx context.Context, params *bot.SendAudioParams) (*models.Message, error)
	SendVoice(ctx context.Context, params *bot.SendVoiceParams) (*models.Message, error)
}

// Editor — редактирование сообщения с кнопками после решения
type Editor interface {
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	EditMessageCaption(ctx context.Context, params *bot.EditMessageCaptionParams) (*models.Message, error)
}
