//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for supervision logs, so workers don't have to name themselves.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is one physical transport connection owned by a single user.
// The owner is fixed at authentication.
// Send must never block: it enqueues the event or fails.
type Connection interface {
	ID() domain.ConnectionID
	UserID() domain.UserID
	Username() string
	Send(evt domain.Event) error
}

type IRegistry interface {
	Add(userID domain.UserID, conn Connection) bool
	Remove(userID domain.UserID, connID domain.ConnectionID) bool
	IsOnline(userID domain.UserID) bool
	HandlesFor(userID domain.UserID) []Connection
	BulkStatus(userIDs []domain.UserID) map[domain.UserID]bool
	Count() (users int, connections int)
}

type IPresenceNotifier interface {
	BroadcastStatus(ctx context.Context, userID domain.UserID, online bool) (domain.DeliveryResult, error)
}

type Authenticator interface {
	Verify(credential string) (domain.UserSummary, error)
}

type IMessageStore interface {
	CreateMessage(ctx context.Context, senderID, receiverID domain.UserID, content string) (domain.Message, error)
	GetMessage(ctx context.Context, id string) (domain.Message, error)
	// SetRead flips the read flag in a single transaction.
	// changed is false when the message was already read.
	SetRead(ctx context.Context, id string) (msg domain.Message, changed bool, err error)
	DistinctContactsOf(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
	History(ctx context.Context, userID, peerID domain.UserID, cursor *string, limit int) (domain.HistoryPage, error)
}

type IUserStore interface {
	CreateUser(ctx context.Context, email, username, hashedPassword string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	UserExists(ctx context.Context, id domain.UserID) (bool, error)
}

type IMessageRouter interface {
	Send(ctx context.Context, origin Connection, req domain.SendMessageRequest) (domain.Message, domain.DeliveryResult, error)
	MarkRead(ctx context.Context, readerID domain.UserID, messageID string) (domain.DeliveryResult, error)
	History(ctx context.Context, userID domain.UserID, peerID string, cursor *string, limit int) (domain.HistoryPage, error)
}

type IEphemeralRelay interface {
	RelayTyping(from domain.UserSummary, to domain.UserID, starting bool) domain.DeliveryResult
}

type Censor interface {
	Censor(content string) domain.CensorResult
}
