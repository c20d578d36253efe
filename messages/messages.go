package messages

import "fmt"

const (
	MsgWelcome = `👋 Отправь мне текст, фото, видео или файл — я передам его на модерацию!`

	MsgBanned = `🚫 Вы заблокированы и не можете отправлять предложения.`

	MsgSubmitted = `🕙 Ваше предложение отправлено на модерацию!`

	MsgNoRights = `🚫 У вас нет прав.`

	MsgReplyToBan = `Ответьте на сообщение пользователя, чтобы забанить его.`

	MsgReplyToUnban = `Ответьте на сообщение пользователя, чтобы разбанить его.`

	MsgApproved = `✅ Одобрено и опубликовано!`

	MsgDeclined = `❌ Предложение отклонено.`

	MsgError = `❌ Ошибка. Попробуйте позже.`

	BtnApprove = `✅ Одобрить`
	BtnDecline = `❌ Отклонить`
)

// FormatSuggestionHeader — заголовок копии предложения в чате админа
func FormatSuggestionHeader(username string, userID int64) string {
	if username == "" {
		username = "Без ника"
	}
	return fmt.Sprintf("📨 От @%s (%d)", username, userID)
}

func FormatBanned(userID int64) string {
	return fmt.Sprintf("🚫 Пользователь %d забанен.", userID)
}

func FormatUnbanned(userID int64) string {
	return fmt.Sprintf("✅ Пользователь %d разбанен.", userID)
}

func FormatStats(suggestions, approved, declined, banned int64) string {
	return fmt.Sprintf(`📊 <b>Статистика бота:</b>
📝 Всего предложений: <b>%d</b>
✅ Одобрено: <b>%d</b>
❌ Отклонено: <b>%d</b>
🚫 Забанено: <b>%d</b>`, suggestions, approved, declined, banned)
}
