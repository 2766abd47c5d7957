package service

import (
	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

// Cart 购物车聚合：本地临时状态，不参与版本迁移。
// 同一商品多次加入时合并为一行并累加数量。
type Cart struct {
	store *repository.DemoStore
}

func NewCart(store *repository.DemoStore) *Cart {
	return &Cart{store: store}
}

// Items 返回当前购物车行项目
func (c *Cart) Items() []model.CartItem {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	return c.store.Cart.All()
}

// AddItem 加入商品；已存在同一商品时累加数量
func (c *Cart) AddItem(item model.CartItem) {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()

	items := c.store.Cart.All()
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			c.store.Cart.Replace(items)
			return
		}
	}
	c.store.Cart.Replace(append(items, item))
}

// RemoveItem 移除某商品的行项目
func (c *Cart) RemoveItem(productID string) {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()

	items := c.store.Cart.All()
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.store.Cart.Replace(kept)
}

// UpdateQuantity 覆盖某商品数量；数量 ≤ 0 时移除该行
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	items := c.store.Cart.All()
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	c.store.Cart.Replace(items)
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	c.store.Cart.Replace(nil)
}

// TotalAmount 返回 Σ 单价×数量
func (c *Cart) TotalAmount() float64 {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	var total float64
	for _, it := range c.store.Cart.All() {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount 返回商品总件数
func (c *Cart) ItemCount() int {
	c.store.Mu.Lock()
	defer c.store.Mu.Unlock()
	var count int
	for _, it := range c.store.Cart.All() {
		count += it.Quantity
	}
	return count
}
