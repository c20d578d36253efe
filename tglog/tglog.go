package tglog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-telegram/bot"
)

var (
	b         *bot.Bot
	channelID int64
	enabled   bool
)

// Init включает дублирование служебных событий в TG-канал
func Init(tgBot *bot.Bot, chID int64) {
	if chID == 0 {
		log.Println("LOG_CHANNEL_ID не задан, журнал событий в канал отключён")
		return
	}
	b = tgBot
	channelID = chID
	enabled = true
	log.Printf("Журнал событий в канале %d включён", chID)
}

// Send пишет событие в лог-канал, не блокируя обработчик
func Send(format string, args ...any) {
	if !enabled {
		return
	}
	text := fmt.Sprintf(format, args...)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: channelID,
			Text:   text,
		})
		if err != nil {
			log.Printf("Ошибка записи в лог-канал: %v", err)
		}
	}()
}
