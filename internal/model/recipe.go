package model

// Recipe 菜谱，Servings 为份数
type Recipe struct {
	BaseModel
	Name     string `gorm:"size:100;not null;index" json:"name"`
	Servings int    `gorm:"not null;default:1" json:"servings"`

	RecipeProducts []RecipeProduct `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// ProductIDs 返回已加载的配料商品集合。调用方需先 Preload("RecipeProducts")。
func (r *Recipe) ProductIDs() IDSet {
	ids := make([]int64, 0, len(r.RecipeProducts))
	for _, rp := range r.RecipeProducts {
		ids = append(ids, rp.ProductID)
	}
	return NewIDSet(ids...)
}

// RecipeProduct 菜谱使用某商品的关联行，(recipe_id, product_id) 唯一
type RecipeProduct struct {
	RecipeID  int64 `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"product_id"`
}

func (RecipeProduct) TableName() string {
	return "recipe_products"
}
