package repository

import (
	"context"
	"time"

	"github.com/herblink/herb-market/internal/model"
)

// DemoOrderRepository 演示模式的订单仓储
type DemoOrderRepository struct {
	store *DemoStore
}

func NewDemoOrderRepository(store *DemoStore) OrderRepository {
	return &DemoOrderRepository{store: store}
}

func (r *DemoOrderRepository) Create(_ context.Context, order *model.Order) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()
	r.store.Orders.Append(*order)
	return nil
}

func (r *DemoOrderRepository) GetByID(_ context.Context, id string) (*model.Order, error) {
	for _, o := range r.store.Orders.All() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DemoOrderRepository) ListByBuyer(_ context.Context, buyerID string) ([]model.Order, error) {
	var res []model.Order
	for _, o := range r.store.Orders.All() {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r *DemoOrderRepository) List(_ context.Context) ([]model.Order, error) {
	return r.store.Orders.All(), nil
}

// SetProcessing 原地写入加工块并覆盖总额
func (r *DemoOrderRepository) SetProcessing(_ context.Context, orderID string, p *model.OrderProcessing, newTotal float64) error {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()
	orders := r.store.Orders.All()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Processing = p
			orders[i].TotalAmount = newTotal
			orders[i].UpdatedAt = time.Now()
			r.store.Orders.Replace(orders)
			return nil
		}
	}
	return ErrNotFound
}
