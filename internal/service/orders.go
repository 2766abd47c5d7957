package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/pkg/logger"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNotPermitted = errors.New("not permitted to view this order")
)

// 各加工项的固定费用
const (
	ProcessingFeeSlicing   = 50.0
	ProcessingFeeGrinding  = 80.0
	ProcessingFeePackaging = 30.0
)

// Orders 下单与订单查询。仓储按运行模式注入（demo 或 gorm）。
type Orders struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	cart     *Cart
}

func NewOrders(orders repository.OrderRepository, products repository.ProductRepository, cart *Cart) *Orders {
	return &Orders{orders: orders, products: products, cart: cart}
}

// Checkout 把购物车结算为订单：总额取购物车合计，逐项扣减库存
// （下限 0，失败不回滚订单），最后清空购物车。
func (s *Orders) Checkout(ctx context.Context, buyer *model.User) (*model.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	order := model.Order{
		ID:          uuid.New().String(),
		BuyerID:     buyer.ID,
		TotalAmount: s.cart.TotalAmount(),
		Status:      model.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Buyer:       model.ContactStub{BusinessName: buyer.BusinessName, Email: buyer.Email},
	}
	for _, it := range items {
		order.OrderItems = append(order.OrderItems, model.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Product: model.OrderItemProduct{
				NameCN: it.ProductName,
				Seller: model.OrderItemSeller{BusinessName: it.SellerName},
			},
		})
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	// 扣库存尽力而为：订单已经创建成功，失败只记日志
	for _, it := range items {
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		newStock := p.Stock - it.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.products.UpdateStock(ctx, it.ProductID, newStock); err != nil {
			logger.Warn("orders: stock update failed",
				zap.String("product", it.ProductID), zap.Error(err))
		}
	}

	s.cart.Clear()
	return &order, nil
}

// Get 按请求者身份做访问控制：买家只能看自己的订单，
// 卖家只能看包含自家商品的订单，管理员不受限。
func (s *Orders) Get(ctx context.Context, orderID string, requester *model.User) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch requester.Role {
	case model.RoleBuyer:
		if order.BuyerID != requester.ID {
			return nil, ErrNotPermitted
		}
	case model.RoleSeller:
		ok := false
		for _, it := range order.OrderItems {
			if it.Product.Seller.BusinessName == requester.BusinessName {
				ok = true
				break
			}
		}
		if !ok {
			return nil, ErrNotPermitted
		}
	}
	return order, nil
}

// ListForBuyer 返回买家自己的订单
func (s *Orders) ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	return s.orders.ListByBuyer(ctx, buyerID)
}

// List 返回全部订单（管理端用）
func (s *Orders) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

// ListForSeller 返回包含该卖家商品的订单，与 Get 的卖家放行规则一致
func (s *Orders) ListForSeller(ctx context.Context, seller *model.User) ([]model.Order, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Order
	for _, o := range all {
		for _, it := range o.OrderItems {
			if it.Product.Seller.BusinessName == seller.BusinessName {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

// RequestProcessing 买家在下单后追加售后加工：写入加工块并把费用
// 计入订单总额。订单不存在或无权限时报错。
func (s *Orders) RequestProcessing(ctx context.Context, orderID string, requester *model.User, opts model.ProcessingOptions) (*model.Order, error) {
	order, err := s.Get(ctx, orderID, requester)
	if err != nil {
		return nil, err
	}

	cost := ProcessingCost(opts)
	p := &model.OrderProcessing{
		Options:     opts,
		Cost:        cost,
		RequestedAt: time.Now(),
		Status:      model.ProcessingStatusRequested,
	}
	if err := s.orders.SetProcessing(ctx, orderID, p, order.TotalAmount+cost); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

// ProcessingCost 按勾选项计费
func ProcessingCost(opts model.ProcessingOptions) float64 {
	var cost float64
	if opts.Slicing {
		cost += ProcessingFeeSlicing
	}
	if opts.Grinding {
		cost += ProcessingFeeGrinding
	}
	if opts.Packaging {
		cost += ProcessingFeePackaging
	}
	return cost
}
