package repository

import (
	"context"

	"github.com/herblink/herb-market/internal/model"
)

// DemoProductRepository 演示模式的商品仓储。
// 查询覆盖固定目录与卖家两个集合；写入只落在卖家集合——
// 固定目录商品由初始化种子数据产生，运行期只有调价会改写它。
type DemoProductRepository struct {
	store *DemoStore
}

func NewDemoProductRepository(store *DemoStore) ProductRepository {
	return &DemoProductRepository{store: store}
}

func (r *DemoProductRepository) Create(_ context.Context, product *model.Product) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()
	r.store.SellerProducts.Append(*product)
	return nil
}

func (r *DemoProductRepository) GetByID(_ context.Context, id string) (*model.Product, error) {
	for _, p := range r.union() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DemoProductRepository) List(_ context.Context) ([]model.Product, error) {
	return r.union(), nil
}

func (r *DemoProductRepository) ListBySeller(_ context.Context, sellerID string) ([]model.Product, error) {
	var res []model.Product
	for _, p := range r.union() {
		if p.SellerID == sellerID {
			res = append(res, p)
		}
	}
	return res, nil
}

// UpdateStock 在持有商品的那个集合内原地覆盖库存
func (r *DemoProductRepository) UpdateStock(_ context.Context, id string, stock int) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()
	for _, col := range []*Collection[model.Product]{r.store.Products, r.store.SellerProducts} {
		items := col.All()
		for i := range items {
			if items[i].ID == id {
				items[i].Stock = stock
				if stock <= 0 {
					items[i].StockStatus = model.StockStatusOutOfStock
				}
				col.Replace(items)
				return nil
			}
		}
	}
	return ErrNotFound
}

func (r *DemoProductRepository) union() []model.Product {
	return append(r.store.Products.All(), r.store.SellerProducts.All()...)
}
