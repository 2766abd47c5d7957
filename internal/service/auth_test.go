package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

func setupAuth(t *testing.T) (*repository.DemoStore, *Auth) {
	t.Helper()
	store := newStore()
	NewBootstrap(store).Initialize()
	auth := NewAuth(repository.NewDemoUserRepository(store), store, "test-secret", time.Hour)
	return store, auth
}

func TestRegisterLoginLogout(t *testing.T) {
	store, auth := setupAuth(t)
	ctx := context.Background()

	u, token, err := auth.Register(ctx, "new@demo.com", "secret123", model.RoleBuyer, "新开药行")
	require.NoError(t, err)
	assert.Equal(t, "new@demo.com", u.ID, "demo mode uses email as id")
	assert.NotEmpty(t, token)

	// 注册即登录
	cur := auth.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, u.ID, cur.ID)

	auth.Logout()
	assert.Nil(t, auth.CurrentUser())
	_, ok := store.RawGet(repository.KeyCurrentUser)
	assert.False(t, ok)

	got, tok, err := auth.Login(ctx, "new@demo.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	parsed, err := auth.ParseToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, parsed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, auth := setupAuth(t)
	ctx := context.Background()
	_, _, err := auth.Register(ctx, "dup@demo.com", "pw", model.RoleSeller, "药行")
	require.NoError(t, err)
	_, _, err = auth.Register(ctx, "dup@demo.com", "pw", model.RoleSeller, "药行")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	_, auth := setupAuth(t)
	_, _, err := auth.Register(context.Background(), "x@demo.com", "pw", model.RoleAdmin, "x")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginWrongPassword(t *testing.T) {
	_, auth := setupAuth(t)
	ctx := context.Background()
	_, _, err := auth.Register(ctx, "u@demo.com", "right", model.RoleBuyer, "b")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "u@demo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "ghost@demo.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSeededDemoAccountAcceptsAnyPassword(t *testing.T) {
	_, auth := setupAuth(t)
	// 种子账户没有密码散列，按演示语义放行
	u, _, err := auth.Login(context.Background(), "admin@platform.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, auth := setupAuth(t)
	_, err := auth.ParseToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
