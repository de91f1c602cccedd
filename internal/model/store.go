package model

// Store 购物地点 (超市、菜市场、网店)
type Store struct {
	BaseModel
	Name  string `gorm:"size:100;not null;index" json:"name"`
	Notes string `gorm:"type:text" json:"notes"`

	ProductStores []ProductStore `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

// ProductStore 商品可在某店购买的关联行，(product_id, store_id) 唯一
type ProductStore struct {
	ProductID int64 `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	StoreID   int64 `gorm:"primaryKey;autoIncrement:false;index" json:"store_id"`
}

func (ProductStore) TableName() string {
	return "product_stores"
}
