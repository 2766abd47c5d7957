package service

import (
	"strconv"
	"time"

	"github.com/herblink/herb-market/internal/model"
)

type seedProduct struct {
	nameCN, nameEN string
	price          float64
	stock          int
	desc           string
	sellerName     string
}

// 固定目录的药材商品（始终可见，视为已审核通过）
var seedCatalog = []seedProduct{
	{"当归", "Angelica Sinensis", 45.00, 100, "优质当归，产地甘肃，品质上乘。补血活血，调经止痛", "甘肃中药材有限公司"},
	{"人参", "Ginseng", 280.00, 50, "长白山野生人参，滋补佳品。大补元气，复脉固脱", "长白山参业集团"},
	{"枸杞", "Goji Berry", 32.00, 200, "宁夏枸杞，颗粒饱满，营养丰富。滋补肝肾，益精明目", "宁夏枸杞专业合作社"},
	{"黄芪", "Astragalus", 38.00, 150, "内蒙古黄芪，补气固表，利尿托毒，排脓生肌", "内蒙古草原药材"},
	{"川芎", "Ligusticum", 42.00, 120, "四川川芎，活血行气，祛风止痛", "四川道地药材"},
	{"白芍", "White Peony Root", 35.00, 180, "安徽白芍，养血柔肝，缓中止痛", "安徽亳州药材"},
	{"熟地黄", "Prepared Rehmannia", 48.00, 90, "河南熟地黄，滋阴补血，益精填髓", "河南怀药集团"},
	{"茯苓", "Poria", 28.00, 220, "云南茯苓，利水渗湿，健脾宁心", "云南天然药材"},
	{"白术", "Atractylodes", 52.00, 110, "浙江白术，健脾益气，燥湿利水", "浙江磐安药材"},
	{"甘草", "Licorice Root", 25.00, 300, "新疆甘草，补脾益气，清热解毒", "新疆甘草专业社"},
	{"党参", "Codonopsis", 38.00, 140, "山西党参，补中益气，健脾益肺", "山西上党参业"},
	{"麦冬", "Ophiopogon", 45.00, 160, "浙江麦冬，养阴生津，润肺清心", "浙江杭白菊合作社"},
	{"五味子", "Schisandra", 68.00, 80, "东北五味子，收敛固涩，益气生津", "东北林下资源"},
	{"山药", "Chinese Yam", 32.00, 200, "河南怀山药，补脾养胃，生津益肺", "河南怀药基地"},
	{"丹参", "Salvia", 55.00, 95, "山东丹参，活血祛瘀，通经止痛", "山东丹参种植园"},
	{"桔梗", "Platycodon", 42.00, 130, "安徽桔梗，宣肺，利咽，祛痰", "安徽桔梗专业社"},
	{"陈皮", "Tangerine Peel", 38.00, 170, "广东新会陈皮，理气健脾，燥湿化痰", "广东新会陈皮厂"},
	{"半夏", "Pinellia", 48.00, 85, "贵州半夏，燥湿化痰，降逆止呕", "贵州山地药材"},
	{"柴胡", "Bupleurum", 65.00, 75, "山西柴胡，疏肝解郁，升阳举陷", "山西柴胡种植基地"},
	{"黄连", "Coptis", 120.00, 45, "四川黄连，清热燥湿，泻火解毒", "四川黄连专业合作社"},
}

// DefaultProducts 生成固定目录商品集合
func DefaultProducts() []model.Product {
	now := time.Now()
	products := make([]model.Product, len(seedCatalog))
	for i, s := range seedCatalog {
		sellerID := "demo-seller-" + strconv.Itoa(i+1)
		products[i] = model.Product{
			ID:          strconv.Itoa(i + 1),
			NameCN:      s.nameCN,
			NameEN:      s.nameEN,
			Price:       s.price,
			Stock:       s.stock,
			Description: s.desc,
			SellerID:    sellerID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Seller:      model.SellerStub{BusinessName: s.sellerName, ID: sellerID},
			StockStatus: model.StockStatusInStock,
			AuditStatus: model.AuditStatusApproved,
		}
	}
	return products
}

// 固定的管理员账户，迁移后保证唯一存在
const (
	AdminUserID       = "demo-admin-1"
	AdminEmail        = "admin@platform.com"
	AdminBusinessName = "中药材B2B平台管理中心"
)

// DefaultUsers 默认账户：买家、卖家、管理员各一
func DefaultUsers() []model.User {
	now := time.Now()
	return []model.User{
		{ID: "demo-buyer-1", Email: "buyer@demo.com", BusinessName: "北京中医药贸易公司", Role: model.RoleBuyer, CreatedAt: now},
		{ID: "demo-seller-1", Email: "seller@demo.com", BusinessName: "甘肃中药材有限公司", Role: model.RoleSeller, CreatedAt: now},
		{ID: AdminUserID, Email: AdminEmail, BusinessName: AdminBusinessName, Role: model.RoleAdmin, CreatedAt: now},
	}
}

// DefaultGroupBuyActivities 示例团购活动
func DefaultGroupBuyActivities() []model.GroupBuyActivity {
	now := time.Now()
	return []model.GroupBuyActivity{
		{
			ID:              "1",
			ProductName:     "当归",
			TargetQuantity:  1000,
			CurrentQuantity: 750,
			UnitPrice:       45.00,
			GroupPrice:      38.00,
			EndDate:         now.Add(7 * 24 * time.Hour),
			Participants:    15,
			Status:          model.GroupBuyStatusActive,
			CreatedAt:       now,
		},
	}
}
