package repository

import (
	"context"

	"github.com/herblink/herb-market/internal/model"
)

// DemoUserRepository 演示模式的用户仓储：线性扫描键值集合。
// 键值层按合约不抛错，因此接口的 error 位恒为 nil（找不到除外）。
type DemoUserRepository struct {
	store *DemoStore
}

func NewDemoUserRepository(store *DemoStore) UserRepository {
	return &DemoUserRepository{store: store}
}

func (r *DemoUserRepository) Create(_ context.Context, user *model.User) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()
	r.store.Users.Append(*user)
	return nil
}

func (r *DemoUserRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range r.store.Users.All() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DemoUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.store.Users.All() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DemoUserRepository) List(_ context.Context) ([]model.User, error) {
	return r.store.Users.All(), nil
}
