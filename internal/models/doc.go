// Package models defines the core domain models for the budget bot.
//
// # Models
//
//   - User: a Telegram account that has talked to the bot
//   - Category: a named income or expense bucket owned by a user
//   - Transaction: a single income or expense record
//   - Debt: an informal debt to or from another person
//
// Report types (Balance, CategoryStat, Report) are read-only aggregates
// computed by the storage layer.
//
// # Conventions
//
//  1. Timestamps are Unix seconds (int64); zero means "not set".
//  2. Relationships use IDs, never pointers.
//  3. Transaction.Category is a loose reference to Category.Name. A deleted
//     category leaves its transactions untouched.
//  4. An empty Note is stored as NULL.
package models
