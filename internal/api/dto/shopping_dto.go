package dto

import "time"

// ==================== 请求 ====================

// AddItemReq 加入购物清单
type AddItemReq struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// SetQuantityReq 设置数量，<= 0 表示移除该条目
type SetQuantityReq struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ==================== 响应 ====================

// ShoppingItemResp 未购买条目 (附带商品名称、备注、可购门店)
type ShoppingItemResp struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductNotes string    `json:"product_notes"`
	Quantity     int       `json:"quantity"`
	StoreIDs     []int64   `json:"store_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoreAvailabilityResp 单个门店能买到清单中多少条目
type StoreAvailabilityResp struct {
	StoreID            int64   `json:"store_id"`
	StoreName          string  `json:"store_name"`
	AvailableCount     int     `json:"available_count"`
	TotalCount         int     `json:"total_count"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// ClearPurchasedResp 清除已购买条目的数量
type ClearPurchasedResp struct {
	Removed int64 `json:"removed"`
}

// DashboardResp 首页数据
type DashboardResp struct {
	Products     []ProductResp           `json:"products"`
	Items        []ShoppingItemResp      `json:"items"`
	Availability []StoreAvailabilityResp `json:"availability"`
	HasPurchased bool                    `json:"has_purchased"`
}
