package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")
	ErrInvalidRole        = errors.New("角色必须是 buyer 或 seller")
)

// Claims 会话令牌载荷
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth 注册 / 登录 / 会话。demo 模式同时维护 demo_current_user
// 单例指针（引用用户记录但不拥有它）。
type Auth struct {
	users     repository.UserRepository
	demo      *repository.DemoStore // demo 模式非空
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuth(users repository.UserRepository, demo *repository.DemoStore, secret string, ttl time.Duration) *Auth {
	return &Auth{users: users, demo: demo, jwtSecret: []byte(secret), tokenTTL: ttl}
}

// Register 注册新账户。demo 模式下 id 即邮箱；重复注册报错。
func (a *Auth) Register(ctx context.Context, email, password, role, businessName string) (*model.User, string, error) {
	if role != model.RoleBuyer && role != model.RoleSeller {
		return nil, "", ErrInvalidRole
	}
	if _, err := a.users.GetByID(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		ID:           email,
		Email:        email,
		BusinessName: businessName,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := a.users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	a.setCurrentUser(u)

	token, err := a.issueToken(u)
	return u, token, err
}

// Login 登录并签发会话令牌。历史演示账户没有密码散列，
// 这类账户按演示语义接受任意密码。
func (a *Auth) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		u, err = a.users.GetByID(ctx, email)
	}
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if u.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, "", ErrInvalidCredentials
		}
	}

	a.setCurrentUser(u)
	token, err := a.issueToken(u)
	return u, token, err
}

// Logout 清除当前用户指针（demo 模式；令牌本身无状态）
func (a *Auth) Logout() {
	a.setCurrentUser(nil)
}

// CurrentUser 返回 demo 模式的当前用户指针
func (a *Auth) CurrentUser() *model.User {
	if a.demo == nil {
		return nil
	}
	return a.demo.CurrentUser.Get()
}

func (a *Auth) setCurrentUser(u *model.User) {
	if a.demo == nil {
		return
	}
	a.demo.CurrentUser.Set(u)
}

func (a *Auth) issueToken(u *model.User) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
	})
	return t.SignedString(a.jwtSecret)
}

// ParseToken 校验令牌并取回用户
func (a *Auth) ParseToken(ctx context.Context, tokenString string) (*model.User, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidCredentials
	}
	return a.users.GetByID(ctx, claims.UserID)
}
