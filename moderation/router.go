package moderation

import (
	"context"
	"log"

	"github.com/go-telegram/bot/models"

	"go_suggest_bot/messages"
)

// Submission — одно предложение пользователя. Нигде не сохраняется:
// живёт от приёма до рассылки, дальше остаются только копии у админов.
type Submission struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Username  string
	Content   Content
}

type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeBanned   Outcome = "banned"
)

// Router рассылает предложения админам с кнопками решения
type Router struct {
	sender Sender
	bans   BanStore
	stats  StatStore
	admins []int64
}

func NewRouter(sender Sender, bans BanStore, stats StatStore, admins []int64) *Router {
	return &Router{sender: sender, bans: bans, stats: stats, admins: admins}
}

// Submit проверяет бан, считает предложение и рассылает его всем админам.
// Рассылка best-effort: недоставка одному админу не отменяет остальных
// и не меняет итог для пользователя.
func (r *Router) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	banned, err := r.bans.IsBanned(ctx, sub.UserID)
	if err != nil {
		return "", err
	}
	if banned {
		return OutcomeBanned, nil
	}

	if err := r.stats.IncrementStat(ctx, StatSuggestions); err != nil {
		return "", err
	}

	rendered := render(sub)
	kb := decisionKeyboard(sub)

	for _, adminID := range r.admins {
		if _, err := Send(ctx, r.sender, adminID, rendered, kb); err != nil {
			log.Printf("Не удалось отправить админу %d: %v", adminID, err)
		}
	}

	return OutcomeAccepted, nil
}

// render добавляет к контенту заголовок с автором предложения
func render(sub Submission) Content {
	header := messages.FormatSuggestionHeader(sub.Username, sub.UserID)

	if sub.Content.Kind == KindText {
		return Content{Kind: KindText, Text: header + "\n\n" + sub.Content.Text}
	}

	caption := header
	if sub.Content.Caption != "" {
		caption += "\n\n" + sub.Content.Caption
	}
	return Content{Kind: sub.Content.Kind, FileID: sub.Content.FileID, Caption: caption}
}

func decisionKeyboard(sub Submission) *models.InlineKeyboardMarkup {
	approve := CallbackPayload{Action: ActionApprove, MessageID: sub.MessageID, UserID: sub.UserID}
	decline := CallbackPayload{Action: ActionDecline, MessageID: sub.MessageID, UserID: sub.UserID}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: messages.BtnApprove, CallbackData: approve.Encode()},
			{Text: messages.BtnDecline, CallbackData: decline.Encode()},
		}},
	}
}
