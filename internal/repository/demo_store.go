package repository

import (
	"sync"

	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/model"
)

// DemoStore 演示模式的数据管理器：每个实体集合一个键，读-改-写
// 由进程内互斥锁串行化。跨进程（多个实例共享同一 Redis / 目录）
// 的并发写没有保护，后写覆盖先写——这是沿用的已知限制。
type DemoStore struct {
	// Mu 串行化本进程内的读-改-写序列
	Mu sync.Mutex

	Products        *Collection[model.Product]
	SellerProducts  *Collection[model.Product]
	Orders          *Collection[model.Order]
	Users           *Collection[model.User]
	GroupBuys       *Collection[model.GroupBuyActivity]
	BuyingRequests  *Collection[model.BuyingRequest]
	SellerResponses *Collection[model.SellerResponse]
	ProductReviews  *Collection[model.ProductReview]
	Cart            *Collection[model.CartItem]
	CurrentUser     *Object[model.User]

	store kvstore.Store
}

func NewDemoStore(store kvstore.Store) *DemoStore {
	return &DemoStore{
		Products:        NewCollection[model.Product](store, KeyProducts),
		SellerProducts:  NewCollection[model.Product](store, KeySellerProducts),
		Orders:          NewCollection[model.Order](store, KeyOrders),
		Users:           NewCollection[model.User](store, KeyUsers),
		GroupBuys:       NewCollection[model.GroupBuyActivity](store, KeyGroupBuyActivity),
		BuyingRequests:  NewCollection[model.BuyingRequest](store, KeyBuyingRequests),
		SellerResponses: NewCollection[model.SellerResponse](store, KeySellerResponses),
		ProductReviews:  NewCollection[model.ProductReview](store, KeyProductReviews),
		Cart:            NewCollection[model.CartItem](store, KeyCart),
		CurrentUser:     NewObject[model.User](store, KeyCurrentUser),
		store:           store,
	}
}

// Version 返回数据格式版本号，未初始化时为空串
func (s *DemoStore) Version() string {
	v, _ := s.store.Get(KeyDataVersion)
	return v
}

func (s *DemoStore) SetVersion(v string) {
	s.store.Set(KeyDataVersion, v)
}

// RawGet 读取任意键的原始值（迁移遗留数据用）
func (s *DemoStore) RawGet(key string) (string, bool) {
	return s.store.Get(key)
}

func (s *DemoStore) RawRemove(key string) {
	s.store.Remove(key)
}

// Clear 删除全部演示数据键
func (s *DemoStore) Clear() {
	for _, k := range AllKeys {
		s.store.Remove(k)
	}
}
