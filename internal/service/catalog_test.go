package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

func seller() *model.User {
	return &model.User{ID: "seller@demo.com", Email: "seller@demo.com",
		BusinessName: "甘肃中药材有限公司", Role: model.RoleSeller}
}

func setupCatalog(t *testing.T) (*repository.DemoStore, *Catalog) {
	t.Helper()
	store := newStore()
	NewBootstrap(store).Initialize()
	return store, NewCatalog(store)
}

func visibleIDs(c *Catalog) map[string]bool {
	ids := make(map[string]bool)
	for _, p := range c.VisibleProducts() {
		ids[p.ID] = true
	}
	return ids
}

func TestVisibleProductsIncludesAllCatalog(t *testing.T) {
	_, c := setupCatalog(t)
	assert.Len(t, c.VisibleProducts(), 20)
}

func TestPendingSellerProductIsHidden(t *testing.T) {
	_, c := setupCatalog(t)

	p, reviewID := c.CreateSellerProduct(seller(), NewSellerProduct{NameCN: "三七", Price: 45, Stock: 30})
	require.NotEmpty(t, reviewID)

	assert.False(t, visibleIDs(c)[p.ID], "pending product must not be visible")
	assert.Len(t, c.AllProductsIncludingPending(), 21)
}

func TestApproveWithoutPriceKeepsOriginal(t *testing.T) {
	_, c := setupCatalog(t)
	p, reviewID := c.CreateSellerProduct(seller(), NewSellerProduct{NameCN: "三七", Price: 45, Stock: 30})

	require.True(t, c.ApproveProductWithPriceAdjustment(reviewID, nil, ""))

	var found *model.Product
	for _, vp := range c.VisibleProducts() {
		if vp.ID == p.ID {
			v := vp
			found = &v
		}
	}
	require.NotNil(t, found, "approved product must become visible")
	assert.Equal(t, 45.0, found.Price)
}

func TestApproveWithPriceAdjustmentMutatesProduct(t *testing.T) {
	store, c := setupCatalog(t)
	p, reviewID := c.CreateSellerProduct(seller(), NewSellerProduct{NameCN: "三七", Price: 45, Stock: 30})

	price := 99.5
	require.True(t, c.ApproveProductWithPriceAdjustment(reviewID, &price, "价格已调整"))

	var review *model.ProductReview
	for _, r := range c.Reviews() {
		if r.ID == reviewID {
			v := r
			review = &v
		}
	}
	require.NotNil(t, review)
	assert.Equal(t, model.ReviewStatusApproved, review.Status)
	require.NotNil(t, review.AdminAdjustedPrice)
	assert.Equal(t, 99.5, *review.AdminAdjustedPrice)
	assert.NotNil(t, review.ReviewedAt)

	for _, sp := range store.SellerProducts.All() {
		if sp.ID == p.ID {
			assert.Equal(t, 99.5, sp.Price)
		}
	}
}

func TestApproveAdjustsCatalogProductInPlace(t *testing.T) {
	store, c := setupCatalog(t)

	// 目录商品（id=1 当归）也可以被审核调价
	reviewID, err := c.CreateProductReview("1", "demo-seller-1", 45)
	require.NoError(t, err)

	price := 50.0
	require.True(t, c.ApproveProductWithPriceAdjustment(reviewID, &price, ""))
	assert.Equal(t, 50.0, store.Products.All()[0].Price)
}

func TestApproveUnknownReviewReturnsFalse(t *testing.T) {
	_, c := setupCatalog(t)
	before := c.Reviews()
	assert.False(t, c.ApproveProductWithPriceAdjustment("nonexistent-id", nil, ""))
	assert.Equal(t, before, c.Reviews())
}

func TestCreateReviewUnknownProductFails(t *testing.T) {
	_, c := setupCatalog(t)
	_, err := c.CreateProductReview("no-such-id", "s", 10)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBackfillAutoApprovesLegacyProducts(t *testing.T) {
	store, c := setupCatalog(t)

	// 审核工作流上线前的遗留商品：直接进集合、没有审核记录
	store.SellerProducts.Append(model.Product{ID: "legacy-1", NameCN: "老山参", Price: 500, SellerID: "s1"})

	assert.True(t, visibleIDs(c)["legacy-1"], "legacy product must stay visible")

	var review *model.ProductReview
	for _, r := range c.Reviews() {
		if r.ProductID == "legacy-1" {
			v := r
			review = &v
		}
	}
	require.NotNil(t, review)
	assert.Equal(t, model.ReviewStatusApproved, review.Status)
	assert.Equal(t, "Auto-approved existing product", review.AdminNotes)
	assert.Equal(t, 500.0, review.OriginalPrice)

	// 再次读取不应产生重复记录
	c.VisibleProducts()
	count := 0
	for _, r := range c.Reviews() {
		if r.ProductID == "legacy-1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRejectedProductStaysHidden(t *testing.T) {
	store, c := setupCatalog(t)
	p, reviewID := c.CreateSellerProduct(seller(), NewSellerProduct{NameCN: "三七", Price: 45, Stock: 30})

	// 驳回操作未实现，这里直接写状态模拟已驳回的数据集
	reviews := store.ProductReviews.All()
	for i := range reviews {
		if reviews[i].ID == reviewID {
			reviews[i].Status = model.ReviewStatusRejected
		}
	}
	store.ProductReviews.Replace(reviews)

	assert.False(t, visibleIDs(c)[p.ID])
}

func TestUnimplementedTransitionsAreExplicit(t *testing.T) {
	_, c := setupCatalog(t)
	assert.ErrorIs(t, c.RejectProduct("r1", ""), ErrNotImplemented)
	assert.ErrorIs(t, c.RequestRevision("r1", ""), ErrNotImplemented)
}
