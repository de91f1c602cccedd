package dto

import "time"

// CreateStoreReq 新建/编辑门店请求
type CreateStoreReq struct {
	Name  string `json:"name" binding:"required,notblank,max=100"` // 门店名称
	Notes string `json:"notes" binding:"omitempty,max=2000"`       // 备注
}

// UpdateStoreReq 与新建字段一致
type UpdateStoreReq = CreateStoreReq

// StoreResp 门店
type StoreResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
