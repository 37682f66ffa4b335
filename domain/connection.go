package domain

type ConnectionID string

// Inbound request payloads, decoded by the lifecycle handler.

type SendMessageRequest struct {
	Content    string `json:"content"`
	ReceiverID string `json:"receiverId"`
}

type TypingRequest struct {
	ReceiverID string `json:"receiverId"`
}

type ReadRequest struct {
	MessageID string `json:"messageId"`
}
