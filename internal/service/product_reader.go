package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/pkg/logger"
)

// ProductReader 按运行模式提供商品读路径：演示模式走可见性规则，
// 数据库模式直接读商品表。
type ProductReader interface {
	// Visible 买家可见的商品
	Visible(ctx context.Context) []model.Product

	// BySeller 某卖家名下的商品（含待审核）
	BySeller(ctx context.Context, sellerID string) []model.Product
}

type demoProductReader struct {
	catalog *Catalog
}

func NewDemoProductReader(catalog *Catalog) ProductReader {
	return &demoProductReader{catalog: catalog}
}

func (r *demoProductReader) Visible(ctx context.Context) []model.Product {
	return r.catalog.VisibleProducts()
}

func (r *demoProductReader) BySeller(ctx context.Context, sellerID string) []model.Product {
	var mine []model.Product
	for _, p := range r.catalog.AllProductsIncludingPending() {
		if p.SellerID == sellerID {
			mine = append(mine, p)
		}
	}
	return mine
}

type dbProductReader struct {
	products repository.ProductRepository
}

func NewDBProductReader(products repository.ProductRepository) ProductReader {
	return &dbProductReader{products: products}
}

func (r *dbProductReader) Visible(ctx context.Context) []model.Product {
	rows, err := r.products.List(ctx)
	if err != nil {
		logger.Warn("读取商品列表失败", zap.Error(err))
		return nil
	}
	return rows
}

func (r *dbProductReader) BySeller(ctx context.Context, sellerID string) []model.Product {
	rows, err := r.products.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Warn("读取卖家商品失败", zap.String("seller_id", sellerID), zap.Error(err))
		return nil
	}
	return rows
}
