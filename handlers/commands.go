package handlers

import (
	"context"
	"log"

	"go_suggest_bot/messages"
	"go_suggest_bot/moderation"
	"go_suggest_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// OnStart — приветствие с учётом бана
func (h *Handler) OnStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	banned, err := h.bans.IsBanned(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Ошибка проверки бана %d: %v", msg.From.ID, err)
		h.send(ctx, msg.Chat.ID, messages.MsgError)
		return
	}
	if banned {
		h.send(ctx, msg.Chat.ID, messages.MsgBanned)
		return
	}
	h.send(ctx, msg.Chat.ID, messages.MsgWelcome)
}

// OnBan банит автора сообщения, на которое ответил админ
func (h *Handler) OnBan(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.banCommand(ctx, update, true)
}

// OnUnban — обратная операция, той же формы
func (h *Handler) OnUnban(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.banCommand(ctx, update, false)
}

func (h *Handler) banCommand(ctx context.Context, update *models.Update, ban bool) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if !h.cfg.IsAdmin(msg.From.ID) {
		h.send(ctx, msg.Chat.ID, messages.MsgNoRights)
		return
	}

	if msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		if ban {
			h.send(ctx, msg.Chat.ID, messages.MsgReplyToBan)
		} else {
			h.send(ctx, msg.Chat.ID, messages.MsgReplyToUnban)
		}
		return
	}

	targetID := msg.ReplyToMessage.From.ID

	var err error
	if ban {
		err = h.bans.Ban(ctx, targetID)
	} else {
		err = h.bans.Unban(ctx, targetID)
	}
	if err != nil {
		log.Printf("Ошибка изменения бана %d: %v", targetID, err)
		h.send(ctx, msg.Chat.ID, messages.MsgError)
		return
	}

	if ban {
		h.send(ctx, msg.Chat.ID, messages.FormatBanned(targetID))
		tglog.Send("🚫 Пользователь %d забанен админом %d", targetID, msg.From.ID)
	} else {
		h.send(ctx, msg.Chat.ID, messages.FormatUnbanned(targetID))
		tglog.Send("✅ Пользователь %d разбанен админом %d", targetID, msg.From.ID)
	}
}

// OnStats — сводка счётчиков, только для админов.
// banned не хранится отдельно, это размер списка забаненных.
func (h *Handler) OnStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if !h.cfg.IsAdmin(msg.From.ID) {
		h.send(ctx, msg.Chat.ID, messages.MsgNoRights)
		return
	}

	stats, err := h.stats.GetStats(ctx)
	if err != nil {
		log.Printf("Ошибка чтения статистики: %v", err)
		h.send(ctx, msg.Chat.ID, messages.MsgError)
		return
	}

	banned, err := h.bans.BannedCount(ctx)
	if err != nil {
		log.Printf("Ошибка подсчёта забаненных: %v", err)
		h.send(ctx, msg.Chat.ID, messages.MsgError)
		return
	}

	text := messages.FormatStats(
		stats[moderation.StatSuggestions],
		stats[moderation.StatApproved],
		stats[moderation.StatDeclined],
		banned,
	)

	_, err = h.tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return
	}
}
