package repository

import (
	"context"
	"errors"

	"github.com/herblink/herb-market/internal/model"
)

// ErrProcessingUnsupported real 模式的关系后端没有加工请求列，
// 售后加工只在演示模式可用
var ErrProcessingUnsupported = errors.New("order processing is only available in demo mode")

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 创建订单及其行项目
	Create(ctx context.Context, order *model.Order) error

	// GetByID 根据订单 ID 查询（含行项目）
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// ListByBuyer 查询某买家的订单列表
	ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error)

	// List 查询全部订单
	List(ctx context.Context) ([]model.Order, error)

	// SetProcessing 写入售后加工块并覆盖订单总额
	SetProcessing(ctx context.Context, orderID string, p *model.OrderProcessing, newTotal float64) error
}
