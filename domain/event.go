package domain

// EventName is part of the wire contract with clients, do not rename.
type EventName string

const (
	EventUserOnline      EventName = "user:online"
	EventUserStatus      EventName = "user:status"
	EventMessageSent     EventName = "message:sent"
	EventMessageReceived EventName = "message:received"
	EventMessageError    EventName = "message:error"
	EventMessageRead     EventName = "message:read"
	EventTypingStart     EventName = "typing:start"
	EventTypingStop      EventName = "typing:stop"

	// Inbound only.
	EventMessageSend EventName = "message:send"
)

// Event is one outbound frame for a single connection.
type Event struct {
	Name    EventName `json:"event"`
	Payload any       `json:"data"`
}

type MessagePayload struct {
	Message  Message      `json:"message"`
	Sender   *UserSummary `json:"sender,omitempty"`
	Receiver *UserSummary `json:"receiver,omitempty"`
}

type ErrorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ReadPayload struct {
	MessageID string `json:"messageId"`
	ReadBy    UserID `json:"readBy"`
}

type TypingPayload struct {
	UserID   UserID `json:"userId"`
	Username string `json:"username,omitempty"`
}

// DeliveryResult counts the connections an event was pushed to.
// Delivered is false when no live connection received it.
type DeliveryResult struct {
	Delivered bool
	Targets   int
	Failed    int
}

// Merge accumulates the outcome of another fan-out into r.
func (r DeliveryResult) Merge(other DeliveryResult) DeliveryResult {
	return DeliveryResult{
		Delivered: r.Delivered || other.Delivered,
		Targets:   r.Targets + other.Targets,
		Failed:    r.Failed + other.Failed,
	}
}
