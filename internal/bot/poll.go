package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateSource is the long-polling part of *tgbotapi.BotAPI.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Run long-polls for updates and handles them one at a time until ctx is
// done or the update channel closes.
func Run(ctx context.Context, src UpdateSource, h *Handler, timeout int) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	updates := src.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Polling stopped")
			src.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, upd)
		}
	}
}
