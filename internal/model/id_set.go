package model

import (
	"slices"
)

// IDSet 去重、升序的正整数 ID 集合。零值为空集合。
type IDSet []int64

// NewIDSet 去掉重复值和非正数后排序
func NewIDSet(ids ...int64) IDSet {
	out := make(IDSet, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (s IDSet) Contains(id int64) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Int64s 返回可安全修改的副本，nil 集合返回空切片
func (s IDSet) Int64s() []int64 {
	out := make([]int64, len(s))
	copy(out, s)
	return out
}

// ProductStores 将集合展开为某商品的门店关联行
func (s IDSet) ProductStores(productID int64) []ProductStore {
	rows := make([]ProductStore, 0, len(s))
	for _, storeID := range s {
		rows = append(rows, ProductStore{ProductID: productID, StoreID: storeID})
	}
	return rows
}

// RecipeProducts 将集合展开为某菜谱的配料关联行
func (s IDSet) RecipeProducts(recipeID int64) []RecipeProduct {
	rows := make([]RecipeProduct, 0, len(s))
	for _, productID := range s {
		rows = append(rows, RecipeProduct{RecipeID: recipeID, ProductID: productID})
	}
	return rows
}
