package model

import "time"

// ShoppingItem 购物清单条目。
// 同一商品最多只有一条未购买条目，已购买条目作为历史保留直到被清理。
type ShoppingItem struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64      `gorm:"not null;index:idx_shopping_items_product_active,priority:1" json:"product_id"`
	Product     *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity    int        `gorm:"not null;default:1" json:"quantity"`
	IsPurchased bool       `gorm:"not null;default:false;index:idx_shopping_items_product_active,priority:2" json:"is_purchased"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
	PurchasedAt *time.Time `json:"purchased_at"`
}

func (ShoppingItem) TableName() string {
	return "shopping_items"
}
