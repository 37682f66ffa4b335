package transport

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/services"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	defaultHistoryLimit = 50
	maxPresenceIDs      = 200
	userKey             = "user"
)

// ErrorResponse is the body of every failed HTTP call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type registerBody struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// API exposes the account endpoints, conversation history, presence lookup
// and the websocket entry point.
type API struct {
	log       *slog.Logger
	auth      services.IAuthService
	verifier  contract.Authenticator
	router    contract.IMessageRouter
	registry  contract.IRegistry
	lifecycle Lifecycle
	opts      Options

	mu       sync.Mutex
	sessions map[*Connection]struct{}
	active   sync.WaitGroup
	draining bool
}

func NewAPI(log *slog.Logger, auth services.IAuthService, verifier contract.Authenticator,
	router contract.IMessageRouter, registry contract.IRegistry, lifecycle Lifecycle, opts Options) *API {
	return &API{
		log:       log,
		auth:      auth,
		verifier:  verifier,
		router:    router,
		registry:  registry,
		lifecycle: lifecycle,
		opts:      opts.withDefaults(),
		sessions:  make(map[*Connection]struct{}),
	}
}

// Handler builds the gin engine serving every route.
func (a *API) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), a.requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		users, connections := a.registry.Count()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "online_users": users, "connections": connections})
	})
	engine.GET("/ws", a.serveWebsocket)

	api := engine.Group("/api")
	api.POST("/auth/register", a.register)
	api.POST("/auth/login", a.login)

	authorized := api.Group("", AuthMiddleware(a.verifier))
	authorized.GET("/messages/:peerId", a.history)
	authorized.GET("/presence", a.presence)

	return engine
}

func (a *API) register(c *gin.Context) {
	var body registerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errors.ErrValidation, err))
		return
	}
	session, err := a.auth.Register(c.Request.Context(), body.Email, body.Username, body.Password)
	if err != nil {
		a.log.Debug("Registration rejected", "email", body.Email, "error", err)
		respondError(c, err)
		return
	}
	a.log.Info("User registered", "user_id", session.User.ID)
	c.JSON(http.StatusCreated, session)
}

func (a *API) login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errors.ErrValidation, err))
		return
	}
	session, err := a.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// history serves GET /api/messages/:peerId?cursor=&limit=
func (a *API) history(c *gin.Context) {
	user := currentUser(c)

	limit := a.opts.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, fmt.Errorf("%w: limit must be a positive integer", errors.ErrValidation))
			return
		}
		limit = min(parsed, a.opts.HistoryLimit)
	}
	var cursor *string
	if raw := c.Query("cursor"); raw != "" {
		cursor = lo.ToPtr(raw)
	}

	page, err := a.router.History(c.Request.Context(), user.ID, c.Param("peerId"), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if page.Messages == nil {
		page.Messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, page)
}

// presence serves GET /api/presence?ids=a,b,c
func (a *API) presence(c *gin.Context) {
	ids := lo.Uniq(lo.Compact(lo.Map(strings.Split(c.Query("ids"), ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	})))
	if len(ids) > maxPresenceIDs {
		respondError(c, fmt.Errorf("%w: at most %d ids", errors.ErrValidation, maxPresenceIDs))
		return
	}
	userIDs := lo.Map(ids, func(id string, _ int) domain.UserID { return domain.UserID(id) })
	c.JSON(http.StatusOK, a.registry.BulkStatus(userIDs))
}

func (a *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		a.log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status())
	}
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated user in the gin context.
func AuthMiddleware(verifier contract.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := verifier.Verify(bearerToken(c.Request))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.UserSummary {
	return c.MustGet(userKey).(domain.UserSummary)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func respondError(c *gin.Context, err error) {
	c.JSON(errors.MapToHTTPStatus(err), ErrorResponse{
		Error:   string(errors.MapToReason(err)),
		Details: errors.Details(err),
	})
}
