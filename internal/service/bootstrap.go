package service

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/pkg/logger"
)

// 旧版单键用户数据的存储键，迁移后删除
const (
	legacyUsersKey       = "users"
	legacyCurrentUserKey = "current_user"
)

// Bootstrap 演示数据的生命周期管理：首次启动播种默认数据、
// 执行一次性迁移、维护数据格式版本号。
type Bootstrap struct {
	store *repository.DemoStore
}

func NewBootstrap(store *repository.DemoStore) *Bootstrap {
	return &Bootstrap{store: store}
}

// Initialize 幂等初始化：版本号匹配时不做任何事；否则播种缺失的
// 默认数据、迁移用户并写入当前版本号。
func (b *Bootstrap) Initialize() {
	b.store.Mu.Lock()
	defer b.store.Mu.Unlock()

	if b.store.Version() == repository.CurrentDataVersion {
		return
	}

	if len(b.store.Products.All()) == 0 {
		b.store.Products.Replace(DefaultProducts())
		logger.Info("bootstrap: seeded default catalog", zap.Int("count", len(seedCatalog)))
	}

	if len(b.store.GroupBuys.All()) == 0 {
		b.store.GroupBuys.Replace(DefaultGroupBuyActivities())
	}

	b.migrateUsers()

	b.store.SetVersion(repository.CurrentDataVersion)
	logger.Info("bootstrap: demo data initialized", zap.String("version", repository.CurrentDataVersion))
}

// migrateUsers 合并旧键数据、播种默认账户并保证管理员存在
func (b *Bootstrap) migrateUsers() {
	b.migrateLegacyUserData()

	users := b.store.Users.All()
	if len(users) == 0 {
		b.store.Users.Replace(DefaultUsers())
		return
	}

	for _, u := range users {
		if u.Role == model.RoleAdmin {
			return
		}
	}

	// 无管理员的旧数据集：补入固定管理员账户
	users = append(users, model.User{
		ID:           AdminUserID,
		Email:        AdminEmail,
		BusinessName: AdminBusinessName,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	b.store.Users.Replace(users)
	logger.Info("bootstrap: added admin user to existing user list")
}

// legacyUser 旧版记录，email 可能缺失
type legacyUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (lu legacyUser) toUser() model.User {
	email := lu.Email
	if email == "" {
		email = lu.ID
	}
	return model.User{
		ID:           lu.ID,
		Email:        email,
		BusinessName: lu.BusinessName,
		Role:         lu.Role,
		CreatedAt:    lu.CreatedAt,
	}
}

// migrateLegacyUserData 把旧版单键用户列表并入统一仓储（按 id 去重），
// 旧版当前用户指针在新指针为空时迁移。解析失败只记日志，迁移尽力而为。
func (b *Bootstrap) migrateLegacyUserData() {
	if raw, ok := b.store.RawGet(legacyUsersKey); ok {
		var legacy []legacyUser
		if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
			logger.Warn("bootstrap: legacy user data unreadable, skipped", zap.Error(err))
		} else {
			existing := b.store.Users.All()
			seen := make(map[string]bool, len(existing))
			for _, u := range existing {
				seen[u.ID] = true
			}
			migrated := 0
			for _, lu := range legacy {
				if seen[lu.ID] {
					continue
				}
				existing = append(existing, lu.toUser())
				seen[lu.ID] = true
				migrated++
			}
			b.store.Users.Replace(existing)
			logger.Info("bootstrap: migrated users from legacy storage", zap.Int("count", migrated))
			b.store.RawRemove(legacyUsersKey)
		}
	}

	if raw, ok := b.store.RawGet(legacyCurrentUserKey); ok {
		var lu legacyUser
		if err := json.Unmarshal([]byte(raw), &lu); err != nil {
			logger.Warn("bootstrap: legacy current user unreadable, skipped", zap.Error(err))
		} else {
			if b.store.CurrentUser.Get() == nil {
				u := lu.toUser()
				b.store.CurrentUser.Set(&u)
			}
			b.store.RawRemove(legacyCurrentUserKey)
		}
	}
}

// Reset 清空全部演示数据（测试 / 重置工具用）
func (b *Bootstrap) Reset() {
	b.store.Mu.Lock()
	defer b.store.Mu.Unlock()
	b.store.Clear()
}

// backup 备份文件结构
type backup struct {
	Version            string                   `json:"version"`
	Timestamp          time.Time                `json:"timestamp"`
	Products           []model.Product          `json:"products"`
	SellerProducts     []model.Product          `json:"sellerProducts"`
	Orders             []model.Order            `json:"orders"`
	Users              []model.User             `json:"users"`
	CurrentUser        *model.User              `json:"currentUser,omitempty"`
	GroupBuyActivities []model.GroupBuyActivity `json:"groupBuyActivities"`
}

// Export 导出演示数据为 JSON 备份
func (b *Bootstrap) Export() ([]byte, error) {
	b.store.Mu.Lock()
	defer b.store.Mu.Unlock()
	return json.MarshalIndent(backup{
		Version:            repository.CurrentDataVersion,
		Timestamp:          time.Now(),
		Products:           b.store.Products.All(),
		SellerProducts:     b.store.SellerProducts.All(),
		Orders:             b.store.Orders.All(),
		Users:              b.store.Users.All(),
		CurrentUser:        b.store.CurrentUser.Get(),
		GroupBuyActivities: b.store.GroupBuys.All(),
	}, "", "  ")
}

// Import 从 JSON 备份恢复；只覆盖备份中出现的集合
func (b *Bootstrap) Import(data []byte) error {
	var bk backup
	if err := json.Unmarshal(data, &bk); err != nil {
		return err
	}

	b.store.Mu.Lock()
	defer b.store.Mu.Unlock()
	if bk.Products != nil {
		b.store.Products.Replace(bk.Products)
	}
	if bk.SellerProducts != nil {
		b.store.SellerProducts.Replace(bk.SellerProducts)
	}
	if bk.Orders != nil {
		b.store.Orders.Replace(bk.Orders)
	}
	if bk.Users != nil {
		b.store.Users.Replace(bk.Users)
	}
	if bk.CurrentUser != nil {
		b.store.CurrentUser.Set(bk.CurrentUser)
	}
	if bk.GroupBuyActivities != nil {
		b.store.GroupBuys.Replace(bk.GroupBuyActivities)
	}
	version := bk.Version
	if version == "" {
		version = repository.CurrentDataVersion
	}
	b.store.SetVersion(version)
	return nil
}
