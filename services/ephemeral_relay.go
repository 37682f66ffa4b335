package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/runtime"
	"log/slog"
)

// EphemeralRelay forwards typing indicators. Nothing is stored or acknowledged,
// an offline recipient simply gets nothing.
type EphemeralRelay struct {
	log      *slog.Logger
	registry contract.IRegistry
}

func NewEphemeralRelay(log *slog.Logger, registry contract.IRegistry) *EphemeralRelay {
	return &EphemeralRelay{log: log, registry: registry}
}

func (r *EphemeralRelay) RelayTyping(from domain.UserSummary, to domain.UserID, starting bool) domain.DeliveryResult {
	conns := r.registry.HandlesFor(to)
	if len(conns) == 0 {
		return domain.DeliveryResult{}
	}

	evt := domain.Event{Name: domain.EventTypingStop, Payload: domain.TypingPayload{UserID: from.ID}}
	if starting {
		evt = domain.Event{Name: domain.EventTypingStart, Payload: domain.TypingPayload{UserID: from.ID, Username: from.Username}}
	}
	return runtime.Fanout(r.log, conns, evt)
}
