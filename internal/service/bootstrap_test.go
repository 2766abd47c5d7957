package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

func newStore() *repository.DemoStore {
	return repository.NewDemoStore(kvstore.NewMemory())
}

func countAdmins(users []model.User) int {
	n := 0
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			n++
		}
	}
	return n
}

func TestInitializeSeedsDefaults(t *testing.T) {
	store := newStore()
	NewBootstrap(store).Initialize()

	products := store.Products.All()
	require.Len(t, products, 20)
	assert.Equal(t, "当归", products[0].NameCN)
	assert.Equal(t, 45.00, products[0].Price)
	assert.Equal(t, model.AuditStatusApproved, products[0].AuditStatus)
	assert.Equal(t, "黄连", products[19].NameCN)

	activities := store.GroupBuys.All()
	require.Len(t, activities, 1)
	assert.Equal(t, model.GroupBuyStatusActive, activities[0].Status)

	users := store.Users.All()
	require.Len(t, users, 3)
	assert.Equal(t, 1, countAdmins(users))
	assert.Equal(t, repository.CurrentDataVersion, store.Version())
}

func TestInitializeIsIdempotent(t *testing.T) {
	store := newStore()
	b := NewBootstrap(store)

	b.Initialize()
	products1 := store.Products.All()
	users1 := store.Users.All()
	version1 := store.Version()

	b.Initialize()
	assert.Equal(t, products1, store.Products.All())
	assert.Equal(t, users1, store.Users.All())
	assert.Equal(t, version1, store.Version())
}

func TestInitializeKeepsExistingData(t *testing.T) {
	store := newStore()
	b := NewBootstrap(store)
	b.Initialize()

	// 用户注册后版本号被清掉（模拟版本升级），已有数据不能被覆盖
	store.Users.Append(model.User{ID: "new@demo.com", Email: "new@demo.com", Role: model.RoleBuyer})
	store.SetVersion("0.9.0")
	b.Initialize()

	users := store.Users.All()
	assert.Len(t, users, 4)
	assert.Equal(t, 1, countAdmins(users))
}

func TestMigrationAddsAdminToAdminlessDataset(t *testing.T) {
	store := newStore()
	store.Users.Replace([]model.User{
		{ID: "a@demo.com", Email: "a@demo.com", Role: model.RoleBuyer},
		{ID: "b@demo.com", Email: "b@demo.com", Role: model.RoleSeller},
	})

	NewBootstrap(store).Initialize()

	users := store.Users.All()
	require.Equal(t, 1, countAdmins(users))
	var admin model.User
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			admin = u
		}
	}
	assert.Equal(t, AdminUserID, admin.ID)
	assert.Equal(t, AdminEmail, admin.Email)
}

func TestMigrationMergesLegacyUsers(t *testing.T) {
	mem := kvstore.NewMemory()
	store := repository.NewDemoStore(mem)

	// email 缺失的旧版记录：迁移后 email 回填为 id
	legacy := []map[string]any{
		{"id": "old@demo.com", "business_name": "老字号药行", "role": "seller"},
		{"id": "demo-buyer-1", "business_name": "重复账户", "role": "buyer"},
	}
	raw, _ := json.Marshal(legacy)
	mem.Set("users", string(raw))
	store.Users.Replace([]model.User{
		{ID: "demo-buyer-1", Email: "buyer@demo.com", Role: model.RoleBuyer},
	})

	NewBootstrap(store).Initialize()

	users := store.Users.All()
	var migrated *model.User
	dupes := 0
	for _, u := range users {
		if u.ID == "old@demo.com" {
			v := u
			migrated = &v
		}
		if u.ID == "demo-buyer-1" {
			dupes++
		}
	}
	require.NotNil(t, migrated)
	assert.Equal(t, "old@demo.com", migrated.Email)
	assert.Equal(t, 1, dupes, "merge must dedupe by id")
	assert.Equal(t, 1, countAdmins(users))

	_, ok := mem.Get("users")
	assert.False(t, ok, "legacy key must be removed")
}

func TestMigrationSwallowsCorruptLegacyData(t *testing.T) {
	mem := kvstore.NewMemory()
	store := repository.NewDemoStore(mem)
	mem.Set("users", "{broken")

	NewBootstrap(store).Initialize()
	assert.Equal(t, 1, countAdmins(store.Users.All()))
}

func TestExportImportRoundTrip(t *testing.T) {
	store := newStore()
	b := NewBootstrap(store)
	b.Initialize()
	store.SellerProducts.Append(model.Product{ID: "99", NameCN: "三七", Price: 150})

	data, err := b.Export()
	require.NoError(t, err)

	fresh := newStore()
	require.NoError(t, NewBootstrap(fresh).Import(data))
	assert.Len(t, fresh.Products.All(), 20)
	require.Len(t, fresh.SellerProducts.All(), 1)
	assert.Equal(t, "三七", fresh.SellerProducts.All()[0].NameCN)
	assert.Equal(t, repository.CurrentDataVersion, fresh.Version())
}

func TestImportRejectsMalformedBackup(t *testing.T) {
	assert.Error(t, NewBootstrap(newStore()).Import([]byte("not json")))
}
