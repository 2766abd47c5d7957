package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblink/herb-market/internal/kvstore"
	"github.com/herblink/herb-market/internal/model"
)

func TestCollectionRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	col := NewCollection[model.Product](store, KeyProducts)

	now := time.Now().Truncate(time.Second)
	in := []model.Product{
		{ID: "1", NameCN: "当归", NameEN: "Angelica Sinensis", Price: 45, Stock: 100,
			SellerID: "demo-seller-1", CreatedAt: now, UpdatedAt: now,
			Seller:      model.SellerStub{BusinessName: "甘肃中药材有限公司", ID: "demo-seller-1"},
			StockStatus: model.StockStatusInStock, AuditStatus: model.AuditStatusApproved},
		{ID: "2", NameCN: "人参", Price: 280, Stock: 50},
	}
	col.Replace(in)

	out := col.All()
	require.Len(t, out, 2)
	assert.Equal(t, in[0].NameCN, out[0].NameCN)
	assert.Equal(t, in[0].Seller, out[0].Seller)
	assert.Equal(t, in[1].Price, out[1].Price)
	assert.True(t, in[0].CreatedAt.Equal(out[0].CreatedAt))
}

func TestCollectionAbsentReturnsEmpty(t *testing.T) {
	col := NewCollection[model.User](kvstore.NewMemory(), KeyUsers)
	assert.Empty(t, col.All())
}

func TestCollectionMalformedReturnsEmpty(t *testing.T) {
	store := kvstore.NewMemory()
	store.Set(KeyUsers, "{not json")
	col := NewCollection[model.User](store, KeyUsers)
	assert.Empty(t, col.All())
}

func TestCollectionAppend(t *testing.T) {
	col := NewCollection[model.CartItem](kvstore.NewMemory(), KeyCart)
	col.Append(model.CartItem{ProductID: "1", Quantity: 2})
	col.Append(model.CartItem{ProductID: "2", Quantity: 1})
	assert.Len(t, col.All(), 2)
}

func TestObjectRoundTripAndRemove(t *testing.T) {
	store := kvstore.NewMemory()
	obj := NewObject[model.User](store, KeyCurrentUser)

	assert.Nil(t, obj.Get())

	u := model.User{ID: "buyer@demo.com", Email: "buyer@demo.com", Role: model.RoleBuyer}
	obj.Set(&u)
	got := obj.Get()
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	obj.Set(nil)
	assert.Nil(t, obj.Get())
	_, ok := store.Get(KeyCurrentUser)
	assert.False(t, ok)
}

func TestDemoStoreClear(t *testing.T) {
	store := kvstore.NewMemory()
	ds := NewDemoStore(store)
	ds.Users.Replace([]model.User{{ID: "u1"}})
	ds.SetVersion(CurrentDataVersion)

	ds.Clear()
	assert.Empty(t, ds.Users.All())
	assert.Equal(t, "", ds.Version())
}
