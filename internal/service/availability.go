package service

import (
	"math"
	"sort"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
)

// ComputeStoreAvailability 计算每个门店能买到多少条未购买条目。
// items 为空时返回空列表（覆盖率无意义，不补零）。
// 结果按覆盖率降序，覆盖率相同保持 stores 的原始顺序。
// items 需预加载 Product.ProductStores。
func ComputeStoreAvailability(stores []model.Store, items []model.ShoppingItem) []dto.StoreAvailabilityResp {
	result := make([]dto.StoreAvailabilityResp, 0, len(stores))
	total := len(items)
	if total == 0 {
		return result
	}

	itemStores := make([]model.IDSet, 0, total)
	for i := range items {
		if items[i].Product == nil {
			itemStores = append(itemStores, nil)
			continue
		}
		itemStores = append(itemStores, items[i].Product.StoreIDs())
	}

	for _, store := range stores {
		available := 0
		for _, ids := range itemStores {
			if ids.Contains(store.ID) {
				available++
			}
		}
		result = append(result, dto.StoreAvailabilityResp{
			StoreID:            store.ID,
			StoreName:          store.Name,
			AvailableCount:     available,
			TotalCount:         total,
			CoveragePercentage: CoveragePercentage(available, total),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CoveragePercentage > result[j].CoveragePercentage
	})
	return result
}

// CoveragePercentage available/total*100，保留一位小数，银行家舍入 (恰好一半时取偶数)
func CoveragePercentage(available, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.RoundToEven(float64(available)*1000/float64(total)) / 10
}
