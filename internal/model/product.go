package model

// Product 可购买的商品
type Product struct {
	BaseModel
	Name  string `gorm:"size:100;not null;index" json:"name"`
	Notes string `gorm:"type:text" json:"notes"`

	ProductStores  []ProductStore  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	RecipeProducts []RecipeProduct `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// StoreIDs 返回已加载的可购买门店集合。调用方需先 Preload("ProductStores")。
func (p *Product) StoreIDs() IDSet {
	ids := make([]int64, 0, len(p.ProductStores))
	for _, ps := range p.ProductStores {
		ids = append(ids, ps.StoreID)
	}
	return NewIDSet(ids...)
}
