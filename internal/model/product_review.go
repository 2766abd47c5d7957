package model

import "time"

// 商品审核状态机：pending_review → {approved, rejected, needs_revision}（终态）
const (
	ReviewStatusPending       = "pending_review"
	ReviewStatusApproved      = "approved"
	ReviewStatusRejected      = "rejected"
	ReviewStatusNeedsRevision = "needs_revision"
)

// ProductReview 管理员对卖家上架商品的审核记录，一件商品一条。
// 审核通过可携带调价，调价会同步写回商品本身。
type ProductReview struct {
	ID                 string     `json:"id"`
	ProductID          string     `json:"product_id"`
	SellerID           string     `json:"seller_id"`
	OriginalPrice      float64    `json:"original_price"`
	AdminAdjustedPrice *float64   `json:"admin_adjusted_price,omitempty"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	Status             string     `json:"status"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	Product            Product    `json:"product"`
}
