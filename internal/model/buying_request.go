package model

import "time"

// 采购请求状态机：pending → admin_approved → sent_to_seller →
// seller_responded → completed；pending 可直接进入 rejected。
const (
	RequestStatusPending         = "pending"
	RequestStatusAdminApproved   = "admin_approved"
	RequestStatusSentToSeller    = "sent_to_seller"
	RequestStatusSellerResponded = "seller_responded"
	RequestStatusCompleted       = "completed"
	RequestStatusRejected        = "rejected"
)

// BuyingRequest 买家发起的寻源采购请求，需管理员审核后路由给卖家
type BuyingRequest struct {
	ID              string           `json:"id"`
	BuyerID         string           `json:"buyer_id"`
	ProductName     string           `json:"product_name"`
	Quantity        int              `json:"quantity"`
	TargetPrice     float64          `json:"target_price"`
	Description     string           `json:"description"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	AdminApprovedAt *time.Time       `json:"admin_approved_at,omitempty"`
	AdminNotes      string           `json:"admin_notes,omitempty"`
	Buyer           ContactStub      `json:"buyer"`
	SellerResponses []SellerResponse `json:"seller_responses,omitempty"`
}

// 卖家报价状态
const (
	ResponseStatusPending  = "pending"
	ResponseStatusAccepted = "accepted"
	ResponseStatusRejected = "rejected"
)

// SellerResponse 卖家对采购请求的报价
type SellerResponse struct {
	ID                string      `json:"id"`
	RequestID         string      `json:"request_id"`
	SellerID          string      `json:"seller_id"`
	OfferedPrice      float64     `json:"offered_price"`
	AvailableQuantity int         `json:"available_quantity"`
	Notes             string      `json:"notes"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	Seller            ContactStub `json:"seller"`
}
