package repository

import (
	"context"
	"errors"

	"github.com/herblink/herb-market/internal/model"
)

// ErrNotFound 实体不存在
var ErrNotFound = errors.New("record not found")

// UserRepository 用户仓储接口
type UserRepository interface {
	// Create 创建用户
	Create(ctx context.Context, user *model.User) error

	// GetByID 根据 ID 查询用户
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByEmail 根据邮箱查询用户
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// List 查询全部用户
	List(ctx context.Context) ([]model.User, error)
}
