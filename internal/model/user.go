package model

import "time"

// 用户角色
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User 平台账户（买家 / 卖家 / 管理员）
// demo 模式下 id 即注册邮箱；real 模式存储 bcrypt 密码散列。
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(128)"`
	Email        string    `json:"email" gorm:"type:varchar(128);uniqueIndex"`
	BusinessName string    `json:"business_name" gorm:"type:varchar(128)"`
	Role         string    `json:"role" gorm:"type:varchar(16);index;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(128)"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// SellerStub 商品内嵌的卖家信息
type SellerStub struct {
	BusinessName string `json:"business_name"`
	ID           string `json:"id"`
}

// ContactStub 内嵌联系人信息（买家或卖家）
type ContactStub struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
}
