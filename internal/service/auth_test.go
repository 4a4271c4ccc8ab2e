package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/healthbridge/backend/pkg/tokens"
)

func TestRegisterAndLogin(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jordan@Example.com", "hunter22", "Jordan Lee")
	require.NoError(t, err)
	require.Equal(t, "jordan@example.com", user.Email)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "hunter22", user.PasswordHash)

	resp, err := svc.Login(ctx, "jordan@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	ctx := context.Background()

	_, err := svc.Register(ctx, "jordan@example.com", "hunter22", "Jordan Lee")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "jordan@example.com", "other-pass", "Someone Else")
	require.ErrorIs(t, err, ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	ctx := context.Background()

	_, err := svc.Register(ctx, "jordan@example.com", "hunter22", "Jordan Lee")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "jordan@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestMe(t *testing.T) {
	r := newTestRepo(t)
	svc := &AuthService{Repo: r, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	ctx := context.Background()

	user, err := svc.Register(ctx, "jordan@example.com", "hunter22", "Jordan Lee")
	require.NoError(t, err)

	got, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)

	_, err = svc.Me(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}
