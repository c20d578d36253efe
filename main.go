package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go_suggest_bot/config"
	"go_suggest_bot/database"
	"go_suggest_bot/handlers"
	"go_suggest_bot/tglog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN не установлен")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL не установлен")
	}
	if cfg.ChannelID == 0 {
		log.Fatal("CHANNEL_ID не установлен")
	}
	if len(cfg.AdminIDs) == 0 {
		log.Fatal("ADMIN_IDS не установлен")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Всё, что не команда и не callback, считается предложением
	var h *handlers.Handler
	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			h.OnSuggestion(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Fatal(err)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Бот @%s запущен", me.Username)

	tglog.Init(b, cfg.LogChannelID)

	h = handlers.New(b, cfg, db, db)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.OnStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/ban", bot.MatchTypePrefix, h.OnBan)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/unban", bot.MatchTypePrefix, h.OnUnban)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypePrefix, h.OnStats)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.OnCallback)

	if cfg.WebhookHost != "" {
		runWebhook(ctx, b, cfg)
		return
	}

	b.Start(ctx)
}

// runWebhook обслуживает обновления через webhook: ставит его на старте,
// снимает на остановке
func runWebhook(ctx context.Context, b *bot.Bot, cfg *config.Config) {
	url := cfg.WebhookHost + cfg.WebhookPath
	if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: url}); err != nil {
		log.Fatal(err)
	}
	log.Printf("Webhook установлен: %s", url)

	mux := http.NewServeMux()
	mux.Handle(cfg.WebhookPath, b.WebhookHandler())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	b.StartWebhook(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
	if _, err := b.DeleteWebhook(shutdownCtx, &bot.DeleteWebhookParams{}); err != nil {
		log.Printf("Ошибка удаления webhook: %v", err)
		return
	}
	log.Println("Webhook удалён")
}
