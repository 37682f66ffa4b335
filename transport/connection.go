package transport

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	defaultBufferSize   = 256
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
	defaultMaxFrameSize = 64 * 1024
)

// inboundFrame is what clients write on the socket.
type inboundFrame struct {
	Event domain.EventName `json:"event"`
	Data  json.RawMessage  `json:"data"`
}

// Connection is one authenticated websocket.
//
// Outbound events go through a bounded queue drained by a single writer
// goroutine, Send never touches the socket. A full queue drops the event
// for this connection only.
type Connection struct {
	id   domain.ConnectionID
	user domain.UserSummary
	ws   *websocket.Conn
	log  *slog.Logger

	outbound     chan domain.Event
	done         chan struct{}
	closeOnce    sync.Once
	writeTimeout time.Duration
	pingInterval time.Duration
}

func newConnection(log *slog.Logger, ws *websocket.Conn, user domain.UserSummary, opts Options) *Connection {
	return &Connection{
		id:           domain.ConnectionID(uuid.NewString()),
		user:         user,
		ws:           ws,
		log:          log,
		outbound:     make(chan domain.Event, opts.ConnectionBufferSize),
		done:         make(chan struct{}),
		writeTimeout: opts.WriteTimeout,
		pingInterval: opts.PingInterval,
	}
}

func (c *Connection) ID() domain.ConnectionID { return c.id }
func (c *Connection) UserID() domain.UserID   { return c.user.ID }
func (c *Connection) Username() string        { return c.user.Username }

// Send enqueues evt without blocking.
func (c *Connection) Send(evt domain.Event) error {
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}
	select {
	case c.outbound <- evt:
		return nil
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
		return errors.ErrBackpressure
	}
}

// Close rejects further sends and lets the writer say goodbye.
// Safe to call many times.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// writeLoop is the only goroutine writing to the socket. It owns the socket
// and closes it on the way out, which also unblocks the reader.
func (c *Connection) writeLoop() {
	ticker := time.NewTicker(c.pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.writeTimeout))
			return
		case evt := <-c.outbound:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.ws.WriteJSON(evt); err != nil {
				c.log.Debug("Websocket write failed", "connection_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeout)); err != nil {
				c.log.Debug("Websocket ping failed", "connection_id", c.id, "error", err)
				return
			}
		}
	}
}

// readLoop hands every inbound frame to onEvent until the peer goes away.
// A peer that misses two ping intervals is considered gone.
func (c *Connection) readLoop(ctx context.Context, maxFrameSize int64, onEvent EventHandler) {
	pongWait := 2 * c.pingInterval
	c.ws.SetReadLimit(maxFrameSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Websocket read failed", "connection_id", c.id, "error", err)
			}
			return
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Event == "" {
			_ = c.Send(domain.Event{
				Name:    domain.EventMessageError,
				Payload: domain.ErrorPayload{Error: string(errors.ReasonValidation), Details: "malformed frame"},
			})
			continue
		}
		// Failures are already reported to this connection by the handler
		_ = onEvent(ctx, c, frame.Event, frame.Data)
	}
}
