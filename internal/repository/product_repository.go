package repository

import (
	"context"

	"github.com/herblink/herb-market/internal/model"
)

// ProductRepository 商品仓储接口（real 模式为单表，demo 模式为
// 目录集合 + 卖家集合的并集）
type ProductRepository interface {
	// Create 创建卖家商品
	Create(ctx context.Context, product *model.Product) error

	// GetByID 根据商品 ID 查询
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// List 查询全部商品
	List(ctx context.Context) ([]model.Product, error)

	// ListBySeller 查询某卖家的商品
	ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error)

	// UpdateStock 覆盖商品库存
	UpdateStock(ctx context.Context, id string, stock int) error
}
