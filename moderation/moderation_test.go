package moderation

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type fakeBans struct {
	mu  sync.Mutex
	set map[int64]bool
}

func newFakeBans(ids ...int64) *fakeBans {
	f := &fakeBans{set: make(map[int64]bool)}
	for _, id := range ids {
		f.set[id] = true
	}
	return f
}

func (f *fakeBans) IsBanned(_ context.Context, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set[userID], nil
}

func (f *fakeBans) Ban(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set[userID] = true
	return nil
}

func (f *fakeBans) Unban(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.set, userID)
	return nil
}

func (f *fakeBans) BannedCount(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.set)), nil
}

type fakeStats struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeStats() *fakeStats {
	return &fakeStats{counts: make(map[string]int64)}
}

func (f *fakeStats) IncrementStat(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.counts[key]++
	return nil
}

func (f *fakeStats) GetStats(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int64, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStats) count(key string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key]
}

// sentItem — одна отправка, записанная фейковым транспортом
type sentItem struct {
	ChatID  int64
	Kind    Kind
	Text    string
	Caption string
	FileID  string
	Markup  models.ReplyMarkup
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentItem
	fail   map[int64]error // chatID -> ошибка доставки
	nextID int
}

func newFakeSender() *fakeSender {
	return &fakeSender{fail: make(map[int64]error)}
}

func (f *fakeSender) record(chatID any, kind Kind, text, caption, fileID string, markup models.ReplyMarkup) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := chatID.(int64)
	if err, ok := f.fail[id]; ok {
		return nil, err
	}
	f.nextID++
	f.sent = append(f.sent, sentItem{ChatID: id, Kind: kind, Text: text, Caption: caption, FileID: fileID, Markup: markup})
	return &models.Message{ID: f.nextID}, nil
}

func fileID(file models.InputFile) string {
	if s, ok := file.(*models.InputFileString); ok {
		return s.Data
	}
	return ""
}

func (f *fakeSender) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	return f.record(p.ChatID, KindText, p.Text, "", "", p.ReplyMarkup)
}

func (f *fakeSender) SendPhoto(_ context.Context, p *bot.SendPhotoParams) (*models.Message, error) {
	return f.record(p.ChatID, KindPhoto, "", p.Caption, fileID(p.Photo), p.ReplyMarkup)
}

func (f *fakeSender) SendVideo(_ context.Context, p *bot.SendVideoParams) (*models.Message, error) {
	return f.record(p.ChatID, KindVideo, "", p.Caption, fileID(p.Video), p.ReplyMarkup)
}

func (f *fakeSender) SendAnimation(_ context.Context, p *bot.SendAnimationParams) (*models.Message, error) {
	return f.record(p.ChatID, KindAnimation, "", p.Caption, fileID(p.Animation), p.ReplyMarkup)
}

func (f *fakeSender) SendDocument(_ context.Context, p *bot.SendDocumentParams) (*models.Message, error) {
	return f.record(p.ChatID, KindDocument, "", p.Caption, fileID(p.Document), p.ReplyMarkup)
}

func (f *fakeSender) SendAudio(_ context.Context, p *bot.SendAudioParams) (*models.Message, error) {
	return f.record(p.ChatID, KindAudio, "", p.Caption, fileID(p.Audio), p.ReplyMarkup)
}

func (f *fakeSender) SendVoice(_ context.Context, p *bot.SendVoiceParams) (*models.Message, error) {
	return f.record(p.ChatID, KindVoice, "", p.Caption, fileID(p.Voice), p.ReplyMarkup)
}

func (f *fakeSender) sentTo(chatID int64) []sentItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentItem
	for _, s := range f.sent {
		if s.ChatID == chatID {
			out = append(out, s)
		}
	}
	return out
}

type fakeEditor struct {
	mu       sync.Mutex
	texts    []string
	captions []string
	err      error
}

func (f *fakeEditor) EditMessageText(_ context.Context, p *bot.EditMessageTextParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.texts = append(f.texts, p.Text)
	return &models.Message{ID: p.MessageID}, nil
}

func (f *fakeEditor) EditMessageCaption(_ context.Context, p *bot.EditMessageCaptionParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.captions = append(f.captions, p.Caption)
	return &models.Message{ID: p.MessageID}, nil
}
