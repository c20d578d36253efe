package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken    string
	DatabaseURL string

	// Канал, куда публикуются одобренные предложения
	ChannelID int64
	// Админы, которым рассылаются предложения на модерацию
	AdminIDs []int64

	WebhookHost string
	WebhookPath string
	Port        string

	LogChannelID int64
}

func Load() *Config {
	channelID, _ := strconv.ParseInt(getEnv("CHANNEL_ID", "0"), 10, 64)
	logChannel, _ := strconv.ParseInt(getEnv("LOG_CHANNEL_ID", "0"), 10, 64)

	return &Config{
		BotToken:     getEnv("BOT_TOKEN", ""),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		ChannelID:    channelID,
		AdminIDs:     parseAdminIDs(getEnv("ADMIN_IDS", "")),
		WebhookHost:  getEnv("WEBHOOK_HOST", ""),
		WebhookPath:  getEnv("WEBHOOK_PATH", "/webhook"),
		Port:         getEnv("PORT", "8080"),
		LogChannelID: logChannel,
	}
}

// IsAdmin проверяет, входит ли пользователь в список админов
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
