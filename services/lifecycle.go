package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/runtime"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// LifecycleHandler is the entry point of the transport: it registers
// authenticated connections, announces presence transitions and routes
// inbound events.
//
// Connect and disconnect of the same user are serialized together with their
// broadcast, so an offline announcement is never computed from a registry
// state older than a concurrent re-registration.
type LifecycleHandler struct {
	log      *slog.Logger
	registry contract.IRegistry
	presence contract.IPresenceNotifier
	router   contract.IMessageRouter
	relay    contract.IEphemeralRelay
	userLock *runtime.KeyedMutex
}

func NewLifecycleHandler(log *slog.Logger, registry contract.IRegistry, presence contract.IPresenceNotifier,
	router contract.IMessageRouter, relay contract.IEphemeralRelay) *LifecycleHandler {
	return &LifecycleHandler{
		log:      log,
		registry: registry,
		presence: presence,
		router:   router,
		relay:    relay,
		userLock: runtime.NewKeyedMutex(0),
	}
}

// OnConnect moves an authenticated connection to the registered state.
func (h *LifecycleHandler) OnConnect(ctx context.Context, conn contract.Connection) {
	userID := conn.UserID()

	unlock := h.userLock.Lock(userID)
	h.registry.Add(userID, conn)
	if _, err := h.presence.BroadcastStatus(ctx, userID, true); err != nil {
		h.log.Warn("Online broadcast failed", "user_id", userID, "error", err)
	}
	unlock()

	if err := conn.Send(domain.Event{
		Name:    domain.EventUserOnline,
		Payload: domain.StatusEvent{UserID: userID, Online: true},
	}); err != nil {
		h.log.Debug("Online confirmation dropped", "connection_id", conn.ID(), "error", err)
	}
	h.log.Info("Connection registered", "user_id", userID, "connection_id", conn.ID())
}

// OnDisconnect deregisters the connection. Contacts are told only when it
// was the last live connection of the user.
func (h *LifecycleHandler) OnDisconnect(ctx context.Context, conn contract.Connection) {
	userID := conn.UserID()

	unlock := h.userLock.Lock(userID)
	defer unlock()

	if !h.registry.Remove(userID, conn.ID()) {
		h.log.Info("Connection closed, no presence change", "user_id", userID, "connection_id", conn.ID())
		return
	}
	if _, err := h.presence.BroadcastStatus(ctx, userID, false); err != nil {
		h.log.Warn("Offline broadcast failed", "user_id", userID, "error", err)
	}
	h.log.Info("Connection closed, user offline", "user_id", userID, "connection_id", conn.ID())
}

// OnEvent decodes and routes one inbound event. Any failure is reported to
// conn alone as message:error; the connection stays usable.
func (h *LifecycleHandler) OnEvent(ctx context.Context, conn contract.Connection, name domain.EventName, raw json.RawMessage) error {
	err := h.dispatch(ctx, conn, name, raw)
	if err != nil {
		h.reportError(conn, err)
	}
	return err
}

func (h *LifecycleHandler) dispatch(ctx context.Context, conn contract.Connection, name domain.EventName, raw json.RawMessage) error {
	switch name {
	case domain.EventMessageSend:
		var req domain.SendMessageRequest
		if err := decode(raw, &req); err != nil {
			return err
		}
		_, _, err := h.router.Send(ctx, conn, req)
		return err

	case domain.EventTypingStart, domain.EventTypingStop:
		var req domain.TypingRequest
		if err := decode(raw, &req); err != nil {
			return err
		}
		if err := validate.Var(req.ReceiverID, "required,uuid"); err != nil {
			return fmt.Errorf("%w: receiverId: %v", errors.ErrValidation, err)
		}
		from := domain.UserSummary{ID: conn.UserID(), Username: conn.Username()}
		h.relay.RelayTyping(from, domain.UserID(req.ReceiverID), name == domain.EventTypingStart)
		return nil

	case domain.EventMessageRead:
		var req domain.ReadRequest
		if err := decode(raw, &req); err != nil {
			return err
		}
		_, err := h.router.MarkRead(ctx, conn.UserID(), req.MessageID)
		return err

	default:
		return fmt.Errorf("%w: unknown event %q", errors.ErrValidation, name)
	}
}

func (h *LifecycleHandler) reportError(conn contract.Connection, err error) {
	reason := errors.MapToReason(err)
	h.log.Debug("Inbound event rejected", "user_id", conn.UserID(), "reason", reason, "error", err)
	if sendErr := conn.Send(domain.Event{
		Name:    domain.EventMessageError,
		Payload: domain.ErrorPayload{Error: string(reason), Details: errors.Details(err)},
	}); sendErr != nil {
		h.log.Debug("Error report dropped", "connection_id", conn.ID(), "error", sendErr)
	}
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing payload", errors.ErrValidation)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
