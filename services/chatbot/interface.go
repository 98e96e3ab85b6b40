package chatbot

import (
	"context"

	"visado/services/scheduling"
)

// ChatService defines the interface for the turn-based booking assistant.
// Each call consumes exactly one user message and yields the reply for it.
type ChatService interface {
	HandleTurn(ctx context.Context, sessionID, message string) (string, error)
}

// DefaultChatService implements ChatService as a finite-state machine over
// the caller's stored session, delegating all inventory work to the
// scheduler.
type DefaultChatService struct {
	Scheduler scheduling.SchedulingService
	Sessions  SessionStore
}
