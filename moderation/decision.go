package moderation

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"

	"go_suggest_bot/messages"
)

// Decision — решение админа, восстановленное из callback-данных
// и сообщения с кнопками. Серверного списка ожидающих предложений нет.
type Decision struct {
	Payload   CallbackPayload
	Content   Content // отрисованный контент из админского чата
	ChatID    int64   // чат админа, где лежит сообщение с кнопками
	ControlID int     // id сообщения с кнопками
}

// Decider применяет решение: счётчик, публикация, снятие кнопок
type Decider struct {
	sender    Sender
	editor    Editor
	stats     StatStore
	channelID int64
}

func NewDecider(sender Sender, editor Editor, stats StatStore, channelID int64) *Decider {
	return &Decider{sender: sender, editor: editor, stats: stats, channelID: channelID}
}

// Resolve обрабатывает approve/decline. Счётчик увеличивается до публикации:
// при ошибке публикации approved уже засчитан — принятое расхождение.
// Повторное решение по тому же предложению не блокируется: оба нажатия
// считаются и публикуются.
func (d *Decider) Resolve(ctx context.Context, dec Decision) error {
	switch dec.Payload.Action {
	case ActionApprove:
		if err := d.stats.IncrementStat(ctx, StatApproved); err != nil {
			return err
		}
		if _, err := Send(ctx, d.sender, d.channelID, dec.Content, nil); err != nil {
			return fmt.Errorf("публикация в канал: %w", err)
		}
		d.markResolved(ctx, dec, messages.MsgApproved)
		return nil

	case ActionDecline:
		if err := d.stats.IncrementStat(ctx, StatDeclined); err != nil {
			return err
		}
		d.markResolved(ctx, dec, messages.MsgDeclined)
		return nil
	}

	return fmt.Errorf("неизвестное действие %q", dec.Payload.Action)
}

// markResolved заменяет кнопки статичной пометкой: текстовое сообщение
// редактируется целиком, у медиа заменяется подпись. Ошибка редактирования
// не отменяет уже принятое решение, только пишется в лог.
func (d *Decider) markResolved(ctx context.Context, dec Decision, notice string) {
	var err error
	if dec.Content.Kind == KindText {
		_, err = d.editor.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    dec.ChatID,
			MessageID: dec.ControlID,
			Text:      notice,
		})
	} else {
		_, err = d.editor.EditMessageCaption(ctx, &bot.EditMessageCaptionParams{
			ChatID:    dec.ChatID,
			MessageID: dec.ControlID,
			Caption:   notice,
		})
	}
	if err != nil {
		log.Printf("Не удалось обновить сообщение %d: %v", dec.ControlID, err)
	}
}
