package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Create_And_Find_User(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openDB(t))

	created, err := repository.CreateUser(ctx, "Alice@Example.com", "alice", "$argon2id$hash")
	req.NoError(err)
	req.Equal("alice@example.com", created.Email)
	req.Equal([]string{"user"}, created.Roles)

	byEmail, err := repository.GetUserByEmail(ctx, "alice@example.com")
	req.NoError(err)
	req.Equal(created, byEmail)

	byID, err := repository.GetUser(ctx, created.ID)
	req.NoError(err)
	req.Equal(created, byID)

	exists, err := repository.UserExists(ctx, created.ID)
	req.NoError(err)
	req.True(exists)
}

func Test_Create_User_Twice(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openDB(t))

	_, err := repository.CreateUser(ctx, "bob@example.com", "bob", "hash")
	req.NoError(err)

	_, err = repository.CreateUser(ctx, "BOB@example.com", "bobby", "hash")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func Test_Unknown_User(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openDB(t))

	exists, err := repository.UserExists(ctx, domain.UserID(uuid.NewString()))
	req.NoError(err)
	req.False(exists)

	_, err = repository.GetUserByEmail(ctx, "ghost@example.com")
	req.ErrorIs(err, errors.ErrNotFound)
}
