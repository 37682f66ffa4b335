// Package domain contains core concepts of the direct-message relay.
// This file defines Message and the participant summaries carried with it.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

type UserID string

func (u UserID) String() string { return string(u) }

// Message is a one-to-one chat message.
// Read flips from false to true once, by the receiver, and never reverts.
type Message struct {
	ID         string    `json:"id"`
	SenderID   UserID    `json:"senderId"`
	ReceiverID UserID    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Read       bool      `json:"read"`
}

// UserSummary is the denormalized view of an account attached to events.
type UserSummary struct {
	ID       UserID `json:"id"`
	Username string `json:"username,omitempty"`
}

// StatusEvent is recomputed from registry state at each presence transition.
type StatusEvent struct {
	UserID UserID `json:"userId"`
	Online bool   `json:"status"`
}

// CensorResult is the outcome of moderating one message. Words lists the
// matched dictionary entries, Language is only guessed when something matched.
type CensorResult struct {
	Content  string
	Words    []string
	Language string
}

// HistoryPage is one page of a conversation, newest first.
type HistoryPage struct {
	Messages []Message `json:"messages"`
	Cursor   *string   `json:"cursor,omitempty"`
}
