package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
)

var testLog = logs.GetLoggerFromLevel(slog.LevelDebug)

// recordingConn is a connection that keeps every event it is sent.
type recordingConn struct {
	id       domain.ConnectionID
	userID   domain.UserID
	username string
	broken   bool

	mu     sync.Mutex
	events []domain.Event
}

func newConn(userID domain.UserID, username string) *recordingConn {
	return &recordingConn{id: domain.ConnectionID(uuid.NewString()), userID: userID, username: username}
}

func (c *recordingConn) ID() domain.ConnectionID { return c.id }
func (c *recordingConn) UserID() domain.UserID   { return c.userID }
func (c *recordingConn) Username() string        { return c.username }

func (c *recordingConn) Send(evt domain.Event) error {
	if c.broken {
		return errors.ErrBackpressure
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
	return nil
}

func (c *recordingConn) named(name domain.EventName) []domain.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var res []domain.Event
	for _, evt := range c.events {
		if evt.Name == name {
			res = append(res, evt)
		}
	}
	return res
}

func (c *recordingConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func newUserID() domain.UserID {
	return domain.UserID(uuid.NewString())
}
