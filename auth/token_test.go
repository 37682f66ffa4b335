package auth

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-with-enough-length", time.Hour)
	user := domain.User{ID: "user-1", Username: "alice", Roles: []string{"user"}}

	token, err := manager.GenerateToken(user)
	req.NoError(err)

	identity, err := manager.Verify(token)
	req.NoError(err)
	req.Equal(domain.UserSummary{ID: "user-1", Username: "alice"}, identity)
}

func TestTokenManager_DistinctErrors(t *testing.T) {
	user := domain.User{ID: "user-1", Username: "alice"}
	manager := NewTokenManager("test-secret-with-enough-length", time.Hour)

	expired := NewTokenManager("test-secret-with-enough-length", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(user)
	require.NoError(t, err)

	foreign := NewTokenManager("another-secret-entirely", time.Hour)
	foreignToken, err := foreign.GenerateToken(user)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", errors.ErrTokenMissing},
		{"expired", expiredToken, errors.ErrTokenExpired},
		{"wrong signature", foreignToken, errors.ErrTokenSignature},
		{"garbage", "not.a.token", errors.ErrTokenMalformed},
		{"unsigned", noneToken, errors.ErrTokenSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := manager.Verify(tt.token)
			req.ErrorIs(err, tt.want)
		})
	}
}
