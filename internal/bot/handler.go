// Package bot adapts the Telegram Bot API to the router.
package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mmynk/budgetbot/internal/router"
)

// FailureText is sent when handling an update fails.
const FailureText = "⚠️ Что-то пошло не так. Попробуйте еще раз или нажмите /cancel."

// Sender is the part of *tgbotapi.BotAPI the handler needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler delivers Telegram updates to a router handler and sends its
// replies back through the API.
type Handler struct {
	api    Sender
	handle router.HandlerFunc
}

// NewHandler creates a Handler that replies through api.
func NewHandler(api Sender, handle router.HandlerFunc) *Handler {
	return &Handler{api: api, handle: handle}
}

// HandleUpdate runs one update through the router and sends the replies.
func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	ev, ok := EventFrom(upd)
	if !ok {
		return
	}

	if ev.IsCallback() {
		// always answer so the client stops its spinner
		defer func() {
			if _, err := h.api.Request(tgbotapi.NewCallback(ev.CallbackID, "")); err != nil {
				slog.Warn("Answer callback failed", "user_id", ev.UserID, "error", err)
			}
		}()
	}

	msgs, err := h.handle(ctx, ev)
	if err != nil {
		h.reply(ev.ChatID, router.Message{Text: FailureText})
		return
	}

	for _, m := range msgs {
		h.reply(ev.ChatID, m)
	}
}

// EventFrom converts an update into a router event. It reports false for
// updates the bot does not handle.
func EventFrom(upd tgbotapi.Update) (router.Event, bool) {
	if q := upd.CallbackQuery; q != nil {
		if q.From == nil {
			return router.Event{}, false
		}
		ev := router.Event{
			UserID:     q.From.ID,
			ChatID:     q.From.ID,
			Username:   q.From.UserName,
			FirstName:  q.From.FirstName,
			Callback:   q.Data,
			CallbackID: q.ID,
		}
		if q.Message != nil && q.Message.Chat != nil {
			ev.ChatID = q.Message.Chat.ID
		}
		return ev, ev.Callback != ""
	}

	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Chat == nil || msg.Text == "" {
		return router.Event{}, false
	}
	return router.Event{
		UserID:    msg.From.ID,
		ChatID:    msg.Chat.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		Text:      msg.Text,
	}, true
}

func (h *Handler) reply(chatID int64, m router.Message) {
	msg := tgbotapi.NewMessage(chatID, m.Text)
	if m.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if m.Keyboard != nil {
		msg.ReplyMarkup = markup(m.Keyboard)
	}
	if _, err := h.api.Send(msg); err != nil {
		slog.Error("Send failed", "chat_id", chatID, "error", err)
	}
}

func markup(kb *router.Keyboard) interface{} {
	if kb.Inline {
		var rows [][]tgbotapi.InlineKeyboardButton
		for _, row := range kb.Rows {
			var buttons []tgbotapi.InlineKeyboardButton
			for _, b := range row {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
			}
			rows = append(rows, buttons)
		}
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	var rows [][]tgbotapi.KeyboardButton
	for _, row := range kb.Rows {
		var buttons []tgbotapi.KeyboardButton
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(b.Text))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}
