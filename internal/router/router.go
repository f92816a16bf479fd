// Package router turns chat events into replies.
//
// Dispatch order for every event:
//
//  1. inline button callbacks;
//  2. cancel and main menu, which abandon any flow;
//  3. /start, /help and the buttons that open a new entry, which work in
//     any state and replace the current flow;
//  4. the handler of the user's current conversation state;
//  5. the button and command table;
//  6. a fallback reply with the main menu.
package router

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/budgetbot/internal/conversation"
	"github.com/mmynk/budgetbot/internal/models"
	"github.com/mmynk/budgetbot/internal/service"
)

type stateHandler func(ctx context.Context, ev Event, s *conversation.Session) ([]Message, error)

// Router owns the menu and conversation logic of the bot.
type Router struct {
	ledger   *service.LedgerService
	sessions conversation.Store

	actions map[Action]HandlerFunc
	states  map[conversation.State]stateHandler
}

// New creates a Router over the ledger and a session store.
func New(ledger *service.LedgerService, sessions conversation.Store) *Router {
	r := &Router{ledger: ledger, sessions: sessions}
	ledger.ReserveNames(BtnSkip, BtnAddCategory)
	for label := range buttonActions {
		ledger.ReserveNames(label)
	}
	r.registerActions()
	r.registerStates()
	return r
}

// Handle processes one event. It has the HandlerFunc signature so that it
// can be wrapped by middleware.
func (r *Router) Handle(ctx context.Context, ev Event) ([]Message, error) {
	ev.Text = strings.TrimSpace(ev.Text)

	if err := r.ledger.Touch(ctx, userOf(ev)); err != nil {
		return nil, err
	}

	if ev.IsCallback() {
		return r.handleCallback(ctx, ev)
	}

	action := Lookup(ev.Text)
	switch action {
	case ActionCancel, ActionMainMenu, ActionStart, ActionHelp,
		ActionAddIncome, ActionAddExpense, ActionAddLent, ActionAddOwe:
		return r.actions[action](ctx, ev)
	}

	session, err := r.sessions.Get(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	if !session.IsIdle() {
		if h, ok := r.states[session.State]; ok {
			return h(ctx, ev, session)
		}
		slog.Warn("Dropping session in unknown state", "user_id", ev.UserID, "state", session.State, "flow_id", session.FlowID)
		if err := r.sessions.Delete(ctx, ev.UserID); err != nil {
			return nil, err
		}
	}

	if h, ok := r.actions[action]; ok {
		return h(ctx, ev)
	}

	return reply(msgUnknown, MainMenu()), nil
}

// begin replaces any active flow with s.
func (r *Router) begin(ctx context.Context, ev Event, s *conversation.Session) error {
	if err := r.sessions.Save(ctx, ev.UserID, s); err != nil {
		return err
	}
	slog.Debug("Flow started", "user_id", ev.UserID, "flow_id", s.FlowID, "state", s.State)
	return nil
}

// finish ends the user's flow.
func (r *Router) finish(ctx context.Context, ev Event, s *conversation.Session) error {
	if err := r.sessions.Delete(ctx, ev.UserID); err != nil {
		return err
	}
	slog.Debug("Flow finished", "user_id", ev.UserID, "flow_id", s.FlowID)
	return nil
}

func userOf(ev Event) *models.User {
	name := ev.Username
	if name == "" {
		name = ev.FirstName
	}
	if name == "" {
		name = "Unknown"
	}
	return &models.User{ID: ev.UserID, DisplayName: name}
}
