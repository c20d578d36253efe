package moderation

import (
	"fmt"
	"strconv"
	"strings"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
)

// CallbackPayload — данные кнопки решения. Несёт всё необходимое,
// чтобы обработать нажатие без поиска по базе.
type CallbackPayload struct {
	Action    Action
	MessageID int   // id исходного сообщения пользователя
	UserID    int64 // id автора предложения
}

func (p CallbackPayload) Encode() string {
	return fmt.Sprintf("%s:%d:%d", p.Action, p.MessageID, p.UserID)
}

func ParseCallback(data string) (CallbackPayload, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return CallbackPayload{}, fmt.Errorf("неверный формат callback-данных %q", data)
	}

	action := Action(parts[0])
	if action != ActionApprove && action != ActionDecline {
		return CallbackPayload{}, fmt.Errorf("неизвестное действие %q", parts[0])
	}

	messageID, err := strconv.Atoi(parts[1])
	if err != nil {
		return CallbackPayload{}, fmt.Errorf("неверный id сообщения %q", parts[1])
	}

	userID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return CallbackPayload{}, fmt.Errorf("неверный id пользователя %q", parts[2])
	}

	return CallbackPayload{Action: action, MessageID: messageID, UserID: userID}, nil
}
