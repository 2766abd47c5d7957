package model

// CartItem 购物车行项目（仅存于本地键值存储，不入仓储集合）
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SellerName  string  `json:"sellerName"`
}
