package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblink/herb-market/internal/model"
)

func danggui(qty int) model.CartItem {
	return model.CartItem{ProductID: "1", ProductName: "当归", Price: 45,
		Quantity: qty, SellerName: "甘肃中药材有限公司"}
}

func TestAddItemMergesByProductID(t *testing.T) {
	c := NewCart(newStore())

	c.AddItem(danggui(2))
	c.AddItem(danggui(3))
	c.AddItem(model.CartItem{ProductID: "2", ProductName: "人参", Price: 280, Quantity: 1})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestTotalAmountAndItemCount(t *testing.T) {
	c := NewCart(newStore())
	c.AddItem(danggui(2))
	c.AddItem(model.CartItem{ProductID: "2", ProductName: "人参", Price: 280, Quantity: 1})

	assert.Equal(t, 45*2+280.0, c.TotalAmount())
	assert.Equal(t, 3, c.ItemCount())

	// 无变更时重复调用结果不变
	assert.Equal(t, c.TotalAmount(), c.TotalAmount())
}

func TestUpdateQuantity(t *testing.T) {
	c := NewCart(newStore())
	c.AddItem(danggui(2))

	c.UpdateQuantity("1", 7)
	assert.Equal(t, 7, c.Items()[0].Quantity)

	// 数量 ≤ 0 时移除该行
	c.UpdateQuantity("1", 0)
	assert.Empty(t, c.Items())
}

func TestRemoveAndClear(t *testing.T) {
	c := NewCart(newStore())
	c.AddItem(danggui(1))
	c.AddItem(model.CartItem{ProductID: "2", ProductName: "人参", Price: 280, Quantity: 1})

	c.RemoveItem("1")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "2", c.Items()[0].ProductID)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalAmount())
	assert.Zero(t, c.ItemCount())
}
