package router

import "context"

// Event is one incoming user interaction, independent of the transport.
type Event struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string

	// Text is the message text. Empty for callbacks.
	Text string

	// Callback is the inline button payload. Empty for messages.
	Callback   string
	CallbackID string
}

// IsCallback reports whether the event came from an inline button.
func (e Event) IsCallback() bool {
	return e.Callback != ""
}

// Button is a keyboard button. Data is only used by inline keyboards.
type Button struct {
	Text string
	Data string
}

// Keyboard is a reply keyboard, or an inline keyboard when Inline is set.
type Keyboard struct {
	Inline bool
	Rows   [][]Button
}

// Message is one reply to send back to the chat.
type Message struct {
	Text string
	// HTML enables Telegram HTML parse mode.
	HTML     bool
	Keyboard *Keyboard
}

// HandlerFunc handles one event and returns the replies to send.
type HandlerFunc func(ctx context.Context, ev Event) ([]Message, error)

func reply(text string, kb *Keyboard) []Message {
	return []Message{{Text: text, Keyboard: kb}}
}

func replyHTML(text string, kb *Keyboard) []Message {
	return []Message{{Text: text, HTML: true, Keyboard: kb}}
}
