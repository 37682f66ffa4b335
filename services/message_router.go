package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/runtime"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DefaultMaxContentLength = 5000

var validate = validator.New()

type sendInput struct {
	Content    string `validate:"required"`
	ReceiverID string `validate:"required,uuid"`
}

// MessageRouter persists direct messages and fans them out to live connections.
type MessageRouter struct {
	log              *slog.Logger
	registry         contract.IRegistry
	messages         contract.IMessageStore
	users            contract.IUserStore
	censor           contract.Censor
	maxContentLength int
}

func NewMessageRouter(log *slog.Logger, registry contract.IRegistry,
	messages contract.IMessageStore, users contract.IUserStore, maxContentLength int) *MessageRouter {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	return &MessageRouter{
		log:              log,
		registry:         registry,
		messages:         messages,
		users:            users,
		maxContentLength: maxContentLength,
	}
}

// WithCensor enables content moderation before persistence.
func (r *MessageRouter) WithCensor(censor contract.Censor) *MessageRouter {
	r.censor = censor
	return r
}

// Send validates and persists a message, confirms it to the origin connection
// and pushes it to every live connection of the receiver.
// Nothing is delivered to anyone unless the message has been stored.
func (r *MessageRouter) Send(ctx context.Context, origin contract.Connection, req domain.SendMessageRequest) (domain.Message, domain.DeliveryResult, error) {
	senderID := origin.UserID()

	// 1. Shape of the request
	if err := r.validateSend(req); err != nil {
		return domain.Message{}, domain.DeliveryResult{}, err
	}
	receiverID := domain.UserID(req.ReceiverID)

	// 2. The receiver must be a known account
	receiver, err := r.users.GetUser(ctx, receiverID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.Message{}, domain.DeliveryResult{}, fmt.Errorf("%w: receiver %s", errors.ErrNotFound, receiverID)
	}
	if err != nil {
		return domain.Message{}, domain.DeliveryResult{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	// 3. No talking to yourself
	if receiverID == senderID {
		return domain.Message{}, domain.DeliveryResult{}, fmt.Errorf("%w: receiver %s", errors.ErrSelfMessage, receiverID)
	}

	content := req.Content
	if r.censor != nil {
		verdict := r.censor.Censor(content)
		if len(verdict.Words) > 0 {
			r.log.Info("Message censored",
				"sender_id", senderID,
				"words", len(verdict.Words),
				"lang", verdict.Language)
		}
		content = verdict.Content
	}

	// 4. Durable write strictly before any delivery
	message, err := r.messages.CreateMessage(ctx, senderID, receiverID, content)
	if err != nil {
		r.log.Error("Message persistence failed", "sender_id", senderID, "receiver_id", receiverID, "error", err)
		return domain.Message{}, domain.DeliveryResult{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	// 5. Confirmation to the issuing connection only
	if err := origin.Send(domain.Event{
		Name:    domain.EventMessageSent,
		Payload: domain.MessagePayload{Message: message},
	}); err != nil {
		r.log.Debug("Sent confirmation dropped", "connection_id", origin.ID(), "error", err)
	}

	// 6. Every live connection of the receiver
	sender := domain.UserSummary{ID: senderID, Username: origin.Username()}
	receiverSummary := receiver.Summary()
	result := runtime.Fanout(r.log, r.registry.HandlesFor(receiverID), domain.Event{
		Name: domain.EventMessageReceived,
		Payload: domain.MessagePayload{
			Message:  message,
			Sender:   &sender,
			Receiver: &receiverSummary,
		},
	})
	r.log.Debug("Message routed",
		"message_id", message.ID,
		"sender_id", senderID,
		"receiver_id", receiverID,
		"targets", result.Targets)
	return message, result, nil
}

func (r *MessageRouter) validateSend(req domain.SendMessageRequest) error {
	if err := validate.Struct(sendInput{Content: req.Content, ReceiverID: req.ReceiverID}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	if utf8.RuneCountInString(req.Content) > r.maxContentLength {
		return fmt.Errorf("%w: content exceeds %d characters", errors.ErrValidation, r.maxContentLength)
	}
	return nil
}

// MarkRead flips the read flag of a message on behalf of its receiver and
// sends a read receipt to the sender's live connections.
// Marking an already read message again is a silent no-op.
func (r *MessageRouter) MarkRead(ctx context.Context, readerID domain.UserID, messageID string) (domain.DeliveryResult, error) {
	if _, err := uuid.Parse(messageID); err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("%w: message %q", errors.ErrNotFound, messageID)
	}

	message, err := r.messages.GetMessage(ctx, messageID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.DeliveryResult{}, fmt.Errorf("%w: message %s", errors.ErrNotFound, messageID)
	}
	if err != nil {
		return domain.DeliveryResult{}, storeError(err)
	}
	if message.ReceiverID != readerID {
		return domain.DeliveryResult{}, fmt.Errorf("%w: message %s", errors.ErrUnauthorized, messageID)
	}
	if message.Read {
		return domain.DeliveryResult{}, nil
	}

	// The store re-checks the flag inside the write transaction,
	// a concurrent reader loses with changed == false.
	message, changed, err := r.messages.SetRead(ctx, messageID)
	if err != nil {
		return domain.DeliveryResult{}, storeError(err)
	}
	if !changed {
		return domain.DeliveryResult{}, nil
	}

	return runtime.Fanout(r.log, r.registry.HandlesFor(message.SenderID), domain.Event{
		Name:    domain.EventMessageRead,
		Payload: domain.ReadPayload{MessageID: message.ID, ReadBy: readerID},
	}), nil
}

// History returns one page of the conversation between userID and peerID.
func (r *MessageRouter) History(ctx context.Context, userID domain.UserID, peerID string, cursor *string, limit int) (domain.HistoryPage, error) {
	if err := validate.Var(peerID, "required,uuid"); err != nil {
		return domain.HistoryPage{}, fmt.Errorf("%w: peer id: %v", errors.ErrValidation, err)
	}
	exists, err := r.users.UserExists(ctx, domain.UserID(peerID))
	if err != nil {
		return domain.HistoryPage{}, storeError(err)
	}
	if !exists {
		return domain.HistoryPage{}, fmt.Errorf("%w: peer %s", errors.ErrNotFound, peerID)
	}
	page, err := r.messages.History(ctx, userID, domain.UserID(peerID), cursor, limit)
	if err != nil {
		return domain.HistoryPage{}, storeError(err)
	}
	return page, nil
}

func storeError(err error) error {
	if stderrors.Is(err, errors.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
}
