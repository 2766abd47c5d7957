package model

import "time"

// 团购活动状态
const (
	GroupBuyStatusActive    = "active"
	GroupBuyStatusCompleted = "completed"
	GroupBuyStatusExpired   = "expired"
)

// GroupBuyActivity 团购活动
type GroupBuyActivity struct {
	ID              string    `json:"id"`
	ProductName     string    `json:"product_name"`
	TargetQuantity  int       `json:"target_quantity"`
	CurrentQuantity int       `json:"current_quantity"`
	UnitPrice       float64   `json:"unit_price"`
	GroupPrice      float64   `json:"group_price"`
	EndDate         time.Time `json:"end_date"`
	Participants    int       `json:"participants"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
