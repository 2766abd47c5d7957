package model

import "time"

// Order 订单模型
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID     string      `json:"buyer_id" gorm:"type:varchar(128);index:idx_buyer_created;not null"`
	TotalAmount float64     `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status      string      `json:"status" gorm:"type:varchar(16);index;not null"`
	CreatedAt   time.Time   `json:"created_at" gorm:"index:idx_buyer_created"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Buyer       ContactStub `json:"buyer" gorm:"-"`
	OrderItems  []OrderItem `json:"order_items" gorm:"foreignKey:OrderID"`
	// Processing 售后加工请求；其费用计入 TotalAmount
	Processing *OrderProcessing `json:"processing,omitempty" gorm:"-"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单行项目
type OrderItem struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string           `json:"order_id" gorm:"type:varchar(36);index;not null"`
	ProductID string           `json:"product_id" gorm:"type:varchar(64);not null"`
	Quantity  int              `json:"quantity" gorm:"not null"`
	UnitPrice float64          `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Product   OrderItemProduct `json:"product" gorm:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderItemProduct 行项目内嵌的商品快照
type OrderItemProduct struct {
	NameCN string          `json:"name_cn"`
	Seller OrderItemSeller `json:"seller"`
}

type OrderItemSeller struct {
	BusinessName string `json:"business_name"`
}

// OrderProcessing 售后加工（切片/研磨/包装）
type OrderProcessing struct {
	Options     ProcessingOptions `json:"options"`
	Cost        float64           `json:"cost"`
	RequestedAt time.Time         `json:"requested_at"`
	Status      string            `json:"status"`
}

type ProcessingOptions struct {
	Slicing   bool `json:"slicing"`
	Grinding  bool `json:"grinding"`
	Packaging bool `json:"packaging"`
}

// 订单状态
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// 加工请求状态
const (
	ProcessingStatusRequested = "requested"
	ProcessingStatusAccepted  = "accepted"
	ProcessingStatusDone      = "done"
)
