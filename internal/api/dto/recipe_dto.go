package dto

import "time"

// CreateRecipeReq 新建/编辑菜谱请求，ProductIDs 为完整的配料集合
type CreateRecipeReq struct {
	Name       string  `json:"name" binding:"required,notblank,max=100"`
	Servings   int     `json:"servings" binding:"required,min=1"`
	ProductIDs []int64 `json:"product_ids" binding:"omitempty,dive,gt=0"`
}

type UpdateRecipeReq = CreateRecipeReq

// RecipeResp 菜谱
type RecipeResp struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Servings   int       `json:"servings"`
	ProductIDs []int64   `json:"product_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
