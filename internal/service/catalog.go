package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/pkg/logger"
)

// ErrNotImplemented 类型里声明了但尚无驱动操作的状态流转
var ErrNotImplemented = errors.New("transition not implemented")

// ErrProductNotFound 商品在两个集合里都不存在
var ErrProductNotFound = errors.New("product not found")

// Catalog 商品目录与上架审核工作流。
// 买家可见目录 = 固定目录 ∪ 审核通过的卖家商品。
type Catalog struct {
	store *repository.DemoStore
}

func NewCatalog(store *repository.DemoStore) *Catalog {
	return &Catalog{store: store}
}

// VisibleProducts 返回买家可见的商品目录。固定目录商品始终可见；
// 卖家商品要求存在 status=approved 的审核记录。调用前会先为历史
// 遗留商品补齐审核记录，保证它们在新规则下仍然可见。
func (c *Catalog) VisibleProducts() []model.Product {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()

	c.backfillReviews()

	catalog := c.store.Products.All()
	approved := make(map[string]bool)
	for _, r := range c.store.ProductReviews.All() {
		if r.Status == model.ReviewStatusApproved {
			approved[r.ProductID] = true
		}
	}

	visible := append([]model.Product(nil), catalog...)
	for _, p := range c.store.SellerProducts.All() {
		if approved[p.ID] {
			visible = append(visible, p)
		}
	}
	return visible
}

// AllProductsIncludingPending 返回未过滤的商品并集（管理端用）
func (c *Catalog) AllProductsIncludingPending() []model.Product {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	return c.allProducts()
}

func (c *Catalog) allProducts() []model.Product {
	return append(c.store.Products.All(), c.store.SellerProducts.All()...)
}

// backfillReviews 为没有审核记录的卖家商品合成 approved 记录。
// 审核工作流上线前创建的商品由此保持可见。调用方须持有锁。
func (c *Catalog) backfillReviews() {
	reviews := c.store.ProductReviews.All()
	reviewed := make(map[string]bool, len(reviews))
	for _, r := range reviews {
		reviewed[r.ProductID] = true
	}

	added := 0
	now := time.Now()
	for _, p := range c.store.SellerProducts.All() {
		if reviewed[p.ID] {
			continue
		}
		price := p.Price
		reviews = append(reviews, model.ProductReview{
			ID:                 fmt.Sprintf("review-%d-%s", now.UnixMilli(), randSuffix()),
			ProductID:          p.ID,
			SellerID:           p.SellerID,
			OriginalPrice:      price,
			AdminAdjustedPrice: &price,
			AdminNotes:         "Auto-approved existing product",
			Status:             model.ReviewStatusApproved,
			ReviewedAt:         &now,
			CreatedAt:          now,
			Product:            p,
		})
		added++
	}
	if added > 0 {
		c.store.ProductReviews.Replace(reviews)
		logger.Info("catalog: auto-approved existing products", zap.Int("count", added))
	}
}

// NewSellerProduct 卖家提交的上架信息
type NewSellerProduct struct {
	NameCN      string
	Price       float64
	Stock       int
	Description string
	ImageURL    string
}

// CreateSellerProduct 上架卖家商品并建立 pending_review 审核记录，
// 返回商品与审核记录 ID。商品在审核通过前对买家不可见。
func (c *Catalog) CreateSellerProduct(seller *model.User, in NewSellerProduct) (model.Product, string) {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()

	now := time.Now()
	p := model.Product{
		ID:          timeID(),
		NameCN:      in.NameCN,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SellerID:    seller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Seller:      model.SellerStub{BusinessName: seller.BusinessName, ID: seller.ID},
		AuditStatus: model.AuditStatusPending,
	}
	c.store.SellerProducts.Append(p)

	reviewID, _ := c.createReview(p.ID, seller.ID, in.Price)
	return p, reviewID
}

// CreateProductReview 为已存在的商品建立 pending_review 审核记录。
// 商品在两个集合里都找不到时返回错误。
func (c *Catalog) CreateProductReview(productID, sellerID string, originalPrice float64) (string, error) {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	return c.createReview(productID, sellerID, originalPrice)
}

func (c *Catalog) createReview(productID, sellerID string, originalPrice float64) (string, error) {
	var product *model.Product
	for _, p := range c.allProducts() {
		if p.ID == productID {
			product = &p
			break
		}
	}
	if product == nil {
		return "", ErrProductNotFound
	}

	review := model.ProductReview{
		ID:            timeID(),
		ProductID:     productID,
		SellerID:      sellerID,
		OriginalPrice: originalPrice,
		Status:        model.ReviewStatusPending,
		CreatedAt:     time.Now(),
		Product:       *product,
	}
	c.store.ProductReviews.Append(review)
	return review.ID, nil
}

// ApproveProductWithPriceAdjustment 管理员审核通过。记录审核结果，
// 传入调价时同步改写商品价格——不论商品在哪个集合。审核记录不存在
// 时返回 false 且不产生任何写入。
func (c *Catalog) ApproveProductWithPriceAdjustment(reviewID string, adjustedPrice *float64, notes string) bool {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()

	reviews := c.store.ProductReviews.All()
	idx := -1
	for i := range reviews {
		if reviews[i].ID == reviewID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	now := time.Now()
	reviews[idx].Status = model.ReviewStatusApproved
	reviews[idx].AdminAdjustedPrice = adjustedPrice
	reviews[idx].AdminNotes = notes
	reviews[idx].ReviewedAt = &now
	c.store.ProductReviews.Replace(reviews)

	if adjustedPrice != nil {
		c.adjustProductPrice(reviews[idx].ProductID, *adjustedPrice)
	}
	return true
}

// adjustProductPrice 在持有商品的集合里原地覆盖价格。调用方须持有锁。
func (c *Catalog) adjustProductPrice(productID string, price float64) {
	for _, col := range []*repository.Collection[model.Product]{c.store.Products, c.store.SellerProducts} {
		items := col.All()
		for i := range items {
			if items[i].ID == productID {
				items[i].Price = price
				items[i].UpdatedAt = time.Now()
				col.Replace(items)
				return
			}
		}
	}
}

// RejectProduct 审核驳回。状态机声明了 rejected 终态，
// 但驱动操作尚未实现。
func (c *Catalog) RejectProduct(reviewID, notes string) error {
	return ErrNotImplemented
}

// RequestRevision 要求卖家修改。同上，尚未实现。
func (c *Catalog) RequestRevision(reviewID, notes string) error {
	return ErrNotImplemented
}

// Reviews 返回全部审核记录（管理端用）
func (c *Catalog) Reviews() []model.ProductReview {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	return c.store.ProductReviews.All()
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randSuffix() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
