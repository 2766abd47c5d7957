package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/herblink/herb-market/internal/model"
)

// GormOrderRepository real 模式的订单仓储实现
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 在一个事务内落地订单与行项目
func (r *GormOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *GormOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) SetProcessing(context.Context, string, *model.OrderProcessing, float64) error {
	return ErrProcessingUnsupported
}
