package model

import "time"

// 库存状态
const (
	StockStatusInStock    = "in_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// 上架审核状态（商品自身携带的冗余标记，审核记录见 ProductReview）
const (
	AuditStatusPending  = "pending"
	AuditStatusApproved = "approved"
	AuditStatusRejected = "rejected"
)

// Product 药材商品。两个物理集合共用同一结构：
// 固定目录商品（始终可见）与卖家提交商品（需管理员审核后可见）。
type Product struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	NameCN      string     `json:"name_cn" gorm:"type:varchar(64);not null"`
	NameEN      string     `json:"name_en,omitempty" gorm:"type:varchar(64)"`
	Price       float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int        `json:"stock" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"type:varchar(256)"`
	SellerID    string     `json:"seller_id" gorm:"type:varchar(128);index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Seller      SellerStub `json:"seller" gorm:"-"`

	StockStatus   string         `json:"stock_status,omitempty" gorm:"type:varchar(16)"`
	QualityReport *QualityReport `json:"quality_report,omitempty" gorm:"-"`
	AuditStatus   string         `json:"audit_status,omitempty" gorm:"type:varchar(16)"`
}

func (Product) TableName() string { return "products" }

// QualityReport 质检报告附件
type QualityReport struct {
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}
