package model

import (
	"time"
)

// BaseModel 公共字段。没有软删除，删除即物理删除。
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All 需要迁移的全部模型，按建表顺序
func All() []interface{} {
	return []interface{}{
		&Store{},
		&Product{},
		&Recipe{},
		&ProductStore{},
		&RecipeProduct{},
		&ShoppingItem{},
	}
}
