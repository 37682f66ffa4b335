package repositories

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Scan_Decodes_Every_Kind(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db, slog.Default(), 0)

	alice, err := users.CreateUser(ctx, "alice@example.com", "alice", "hash")
	req.NoError(err)
	bob := domain.UserID(uuid.NewString())
	_, err = messages.CreateMessage(ctx, alice.ID, bob, strings.Repeat("x", 100))
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("msg:broken"), []byte{0xff})
	}))

	all, err := Scan(db, "", 0)
	req.NoError(err)
	kinds := map[string]int{}
	for _, entry := range all {
		kinds[entry.Kind]++
	}
	// user, email, msg x2, conv, contact x2
	req.Equal(map[string]int{"user": 1, "email": 1, "msg": 2, "conv": 1, "contact": 2}, kinds)

	found, err := Scan(db, "user:", 0)
	req.NoError(err)
	req.Len(found, 1)
	req.Contains(found[0].Detail, "alice <alice@example.com>")

	broken, err := Scan(db, "msg:broken", 0)
	req.NoError(err)
	req.Len(broken, 1)
	req.Contains(broken[0].Detail, "corrupted")

	limited, err := Scan(db, "", 2)
	req.NoError(err)
	req.Len(limited, 2)
}
