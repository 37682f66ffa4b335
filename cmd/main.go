package main

import (
	"chat-relay/auth"
	grpc2 "chat-relay/grpc"
	"chat-relay/moderation"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"chat-relay/transport"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal arrives.
// Returning an error instead of exiting lets the deferred cleanup run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	messageRepository := repositories.NewMessageRepository(db, log, config.HistoryLimit)
	userRepository := repositories.NewUserRepository(db)
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)

	// 3. Presence & routing core
	registry := runtime.NewRegistry()
	presence := runtime.NewPresenceNotifier(log, registry, messageRepository)
	router := services.NewMessageRouter(log, registry, messageRepository, userRepository, config.MaxContentLength)
	if config.EnableModeration {
		moderator, err := newModerator(log, config.CensoredCharacter)
		if err != nil {
			return err
		}
		router.WithCensor(moderator)
	}
	relay := services.NewEphemeralRelay(log, registry)
	lifecycle := services.NewLifecycleHandler(log, registry, presence, router, relay)
	authService := services.NewAuthService(userRepository, tokens)

	// 4. Transport
	if config.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}
	api := transport.NewAPI(log, authService, tokens, router, registry, lifecycle, transport.Options{
		ConnectionBufferSize: config.ConnectionBufferSize,
		WriteTimeout:         config.WriteTimeout,
		PingInterval:         config.PingInterval,
		HistoryLimit:         config.HistoryLimit,
		AllowedOrigins:       splitList(config.AllowedOrigins),
	})

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		transport.NewHTTPServerWorker(log, fmt.Sprintf("%s:%d", config.Host, config.Port), api),
		grpc2.NewHealthWorker(log, fmt.Sprintf("%s:%d", config.Host, config.HealthPort), 0, badgerProbe(db)),
		workers.NewStatsReporterWorker(log, registry, config.StatsInterval),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Chat relay starting", "address", fmt.Sprintf("%s:%d", config.Host, config.Port))
	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}

func newModerator(log *slog.Logger, censoredCharacter string) (*moderation.Moderator, error) {
	dictionary, err := moderation.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("loading censored words: %w", err)
	}
	char, _ := utf8.DecodeRuneInString(censoredCharacter)
	if char == utf8.RuneError {
		char = '*'
	}
	moderator, err := moderation.NewModerator(dictionary.Words, char)
	if err != nil {
		return nil, fmt.Errorf("building moderator: %w", err)
	}
	log.Info("Moderation enabled", "words", len(dictionary.Words), "languages", dictionary.Languages)
	return moderator, nil
}

func badgerProbe(db *badger.DB) grpc2.Probe {
	return func(context.Context) error {
		if db.IsClosed() {
			return badger.ErrDBClosed
		}
		return nil
	}
}

func splitList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
