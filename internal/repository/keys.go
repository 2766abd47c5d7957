package repository

// 演示模式各集合的存储键。每个集合独占一个键，值为 JSON 数组；
// demo_current_user 是单个对象，demo_data_version 是版本号标量。
const (
	KeyProducts         = "demo_products"
	KeySellerProducts   = "demo_seller_products"
	KeyOrders           = "demo_orders"
	KeyUsers            = "demo_users"
	KeyCurrentUser      = "demo_current_user"
	KeyGroupBuyActivity = "demo_group_buy_activities"
	KeyBuyingRequests   = "demo_buying_requests"
	KeySellerResponses  = "demo_seller_responses"
	KeyProductReviews   = "demo_admin_product_reviews"
	KeyCart             = "cart"
	KeyDataVersion      = "demo_data_version"
)

// CurrentDataVersion 数据结构变更时递增，触发重新初始化
const CurrentDataVersion = "1.0.0"

// AllKeys 清空演示数据时用
var AllKeys = []string{
	KeyProducts, KeySellerProducts, KeyOrders, KeyUsers, KeyCurrentUser,
	KeyGroupBuyActivity, KeyBuyingRequests, KeySellerResponses,
	KeyProductReviews, KeyCart, KeyDataVersion,
}
