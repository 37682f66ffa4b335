package transport

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

type EventHandler func(ctx context.Context, conn contract.Connection, name domain.EventName, raw json.RawMessage) error

// Lifecycle receives the connect, disconnect and inbound events of every socket.
type Lifecycle interface {
	OnConnect(ctx context.Context, conn contract.Connection)
	OnDisconnect(ctx context.Context, conn contract.Connection)
	OnEvent(ctx context.Context, conn contract.Connection, name domain.EventName, raw json.RawMessage) error
}

type Options struct {
	ConnectionBufferSize int
	WriteTimeout         time.Duration
	PingInterval         time.Duration
	MaxFrameSize         int64
	HistoryLimit         int
	AllowedOrigins       []string
}

func (o Options) withDefaults() Options {
	if o.ConnectionBufferSize <= 0 {
		o.ConnectionBufferSize = defaultBufferSize
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = defaultWriteTimeout
	}
	if o.PingInterval <= 0 {
		o.PingInterval = defaultPingInterval
	}
	if o.MaxFrameSize <= 0 {
		o.MaxFrameSize = defaultMaxFrameSize
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = defaultHistoryLimit
	}
	return o
}

func (a *API) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if len(a.opts.AllowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range a.opts.AllowedOrigins {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		},
	}
}

// serveWebsocket authenticates the handshake, registers the connection and
// blocks on its read loop. The user is only registered once authenticated.
func (a *API) serveWebsocket(c *gin.Context) {
	credential := bearerToken(c.Request)
	if credential == "" {
		credential = c.Query("token")
	}
	user, err := a.verifier.Verify(credential)
	if err != nil {
		a.log.Debug("Websocket handshake rejected", "remote", c.ClientIP(), "error", err)
		respondError(c, err)
		return
	}

	upgrader := a.upgrader()
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.log.Warn("Websocket upgrade failed", "user_id", user.ID, "error", err)
		return
	}

	conn := newConnection(a.log, ws, user, a.opts)
	go conn.writeLoop()
	if !a.track(conn) {
		conn.Close()
		return
	}
	defer a.untrack(conn)

	// The disconnect broadcast must still run once the request is gone
	ctx := context.WithoutCancel(c.Request.Context())
	a.lifecycle.OnConnect(ctx, conn)

	conn.readLoop(ctx, a.opts.MaxFrameSize, a.lifecycle.OnEvent)

	conn.Close()
	a.lifecycle.OnDisconnect(ctx, conn)
}

func (a *API) track(conn *Connection) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.draining {
		return false
	}
	a.sessions[conn] = struct{}{}
	a.active.Add(1)
	return true
}

func (a *API) untrack(conn *Connection) {
	a.mu.Lock()
	delete(a.sessions, conn)
	a.mu.Unlock()
	a.active.Done()
}

// Drain closes every live websocket and waits until each of them went
// through OnDisconnect. New handshakes are refused from then on.
func (a *API) Drain(ctx context.Context) error {
	a.mu.Lock()
	a.draining = true
	conns := lo.Keys(a.sessions)
	a.mu.Unlock()

	a.log.Info("Closing live websockets", "count", len(conns))
	for _, conn := range conns {
		conn.Close()
	}

	done := make(chan struct{})
	go func() {
		a.active.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
