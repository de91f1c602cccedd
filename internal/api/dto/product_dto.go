package dto

import "time"

// CreateProductReq 新建/编辑商品请求，StoreIDs 为完整的可购门店集合
type CreateProductReq struct {
	Name     string  `json:"name" binding:"required,notblank,max=100"`
	Notes    string  `json:"notes" binding:"omitempty,max=2000"`
	StoreIDs []int64 `json:"store_ids" binding:"omitempty,dive,gt=0"`
}

// UpdateProductReq 编辑时整体替换门店集合
type UpdateProductReq = CreateProductReq

// ProductResp 商品
type ProductResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	StoreIDs  []int64   `json:"store_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
