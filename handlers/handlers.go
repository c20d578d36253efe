package handlers

import (
	"context"
	"log"

	"go_suggest_bot/config"
	"go_suggest_bot/messages"
	"go_suggest_bot/moderation"
	"go_suggest_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// botAPI — вызовы транспорта, нужные обработчикам. *bot.Bot реализует.
type botAPI interface {
	moderation.Sender
	moderation.Editor
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

type Handler struct {
	tg      botAPI
	cfg     *config.Config
	bans    moderation.BanStore
	stats   moderation.StatStore
	router  *moderation.Router
	decider *moderation.Decider
}

func New(tg botAPI, cfg *config.Config, bans moderation.BanStore, stats moderation.StatStore) *Handler {
	return &Handler{
		tg:      tg,
		cfg:     cfg,
		bans:    bans,
		stats:   stats,
		router:  moderation.NewRouter(tg, bans, stats, cfg.AdminIDs),
		decider: moderation.NewDecider(tg, tg, stats, cfg.ChannelID),
	}
}

// OnSuggestion принимает предложение из личного чата и отдаёт его роутеру
func (h *Handler) OnSuggestion(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	if msg.Chat.Type != "private" {
		return
	}

	content, ok := moderation.FromMessage(msg)
	if !ok {
		return
	}

	sub := moderation.Submission{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		UserID:    msg.From.ID,
		Username:  msg.From.Username,
		Content:   content,
	}

	outcome, err := h.router.Submit(ctx, sub)
	if err != nil {
		log.Printf("Ошибка приёма предложения от %d: %v", msg.From.ID, err)
		h.send(ctx, msg.Chat.ID, messages.MsgError)
		return
	}

	switch outcome {
	case moderation.OutcomeBanned:
		h.send(ctx, msg.Chat.ID, messages.MsgBanned)
	case moderation.OutcomeAccepted:
		h.send(ctx, msg.Chat.ID, messages.MsgSubmitted)
	}
}

// OnCallback обрабатывает нажатие кнопки решения.
// AnswerCallbackQuery вызывается ровно один раз, в том числе на ошибочных путях.
func (h *Handler) OnCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	answer := &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID}
	defer func() {
		if _, err := h.tg.AnswerCallbackQuery(ctx, answer); err != nil {
			log.Printf("Ошибка ответа на callback %s: %v", cb.ID, err)
		}
	}()

	payload, err := moderation.ParseCallback(cb.Data)
	if err != nil {
		log.Printf("Callback от %d: %v", cb.From.ID, err)
		return
	}

	ctrl := cb.Message.Message
	if ctrl == nil {
		log.Printf("Callback %s: сообщение с кнопками недоступно", cb.ID)
		return
	}

	content, ok := moderation.FromMessage(ctrl)
	if !ok {
		log.Printf("Callback %s: в сообщении нет контента", cb.ID)
		return
	}

	dec := moderation.Decision{
		Payload:   payload,
		Content:   content,
		ChatID:    ctrl.Chat.ID,
		ControlID: ctrl.ID,
	}

	if err := h.decider.Resolve(ctx, dec); err != nil {
		log.Printf("Ошибка решения по предложению %d: %v", payload.MessageID, err)
		answer.Text = messages.MsgError
		answer.ShowAlert = true
		return
	}

	if payload.Action == moderation.ActionApprove {
		tglog.Send("✅ Предложение %d от пользователя %d опубликовано", payload.MessageID, payload.UserID)
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string) {
	_, err := h.tg.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		return
	}
}
