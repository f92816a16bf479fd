package models

// User represents a Telegram user known to the bot.
// Users are created on first interaction and never updated or deleted.
type User struct {
	// ID is the Telegram user ID.
	ID int64

	// DisplayName is the Telegram username (or first name when the
	// username is hidden) captured at registration.
	DisplayName string

	// CreatedAt is the Unix timestamp of the first interaction.
	CreatedAt int64
}
