package service

import (
	"time"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
)

// Sourcing 采购请求工作流。本核心只实现第一段流转：
// 买家提交（pending）→ 管理员审核（admin_approved）；
// 后续状态在类型里声明，驱动操作未实现。
type Sourcing struct {
	store *repository.DemoStore
}

func NewSourcing(store *repository.DemoStore) *Sourcing {
	return &Sourcing{store: store}
}

// NewBuyingRequest 买家提交的采购请求字段
type NewBuyingRequest struct {
	ProductName string
	Quantity    int
	TargetPrice float64
	Description string
}

// CreateBuyingRequest 创建采购请求，返回新记录 ID
func (s *Sourcing) CreateBuyingRequest(buyer *model.User, in NewBuyingRequest) string {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()

	now := time.Now()
	req := model.BuyingRequest{
		ID:          timeID(),
		BuyerID:     buyer.ID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		TargetPrice: in.TargetPrice,
		Description: in.Description,
		Status:      model.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Buyer:       model.ContactStub{BusinessName: buyer.BusinessName, Email: buyer.Email},
	}
	s.store.BuyingRequests.Append(req)
	return req.ID
}

// ApproveBuyingRequest 管理员审核通过。请求不存在时返回 false，
// 集合保持原样（无部分写入）。
func (s *Sourcing) ApproveBuyingRequest(requestID, adminNotes string) bool {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()

	requests := s.store.BuyingRequests.All()
	for i := range requests {
		if requests[i].ID == requestID {
			now := time.Now()
			requests[i].Status = model.RequestStatusAdminApproved
			requests[i].AdminApprovedAt = &now
			requests[i].AdminNotes = adminNotes
			requests[i].UpdatedAt = now
			s.store.BuyingRequests.Replace(requests)
			return true
		}
	}
	return false
}

// RejectBuyingRequest rejected 终态已声明但驱动操作未实现
func (s *Sourcing) RejectBuyingRequest(requestID, adminNotes string) error {
	return ErrNotImplemented
}

// SendToSeller 路由给卖家的流转未实现
func (s *Sourcing) SendToSeller(requestID string) error {
	return ErrNotImplemented
}

// ListBuyingRequests 返回全部采购请求
func (s *Sourcing) ListBuyingRequests() []model.BuyingRequest {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	return s.store.BuyingRequests.All()
}

// ListByBuyer 返回某买家的采购请求
func (s *Sourcing) ListByBuyer(buyerID string) []model.BuyingRequest {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	var res []model.BuyingRequest
	for _, r := range s.store.BuyingRequests.All() {
		if r.BuyerID == buyerID {
			res = append(res, r)
		}
	}
	return res
}

// SellerResponses 返回某请求下的卖家报价
func (s *Sourcing) SellerResponses(requestID string) []model.SellerResponse {
	s.store.Mu.Lock()
	defer s.store.Mu.Unlock()
	var res []model.SellerResponse
	for _, r := range s.store.SellerResponses.All() {
		if r.RequestID == requestID {
			res = append(res, r)
		}
	}
	return res
}
