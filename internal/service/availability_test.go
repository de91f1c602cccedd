package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"family_shopping/internal/model"
)

func itemAt(productID int64, storeIDs ...int64) model.ShoppingItem {
	return model.ShoppingItem{
		ProductID: productID,
		Quantity:  1,
		Product: &model.Product{
			BaseModel:     model.BaseModel{ID: productID},
			ProductStores: model.NewIDSet(storeIDs...).ProductStores(productID),
		},
	}
}

func store(id int64, name string) model.Store {
	return model.Store{BaseModel: model.BaseModel{ID: id}, Name: name}
}

func TestComputeStoreAvailability_NoItems(t *testing.T) {
	got := ComputeStoreAvailability([]model.Store{store(1, "A")}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeStoreAvailability_Coverage(t *testing.T) {
	// B 在名称顺序中排前面，但覆盖率更低
	stores := []model.Store{store(2, "B"), store(1, "A"), store(3, "C")}
	items := []model.ShoppingItem{
		itemAt(10, 1, 2),
		itemAt(11, 1),
		itemAt(12),
	}

	got := ComputeStoreAvailability(stores, items)
	if assert.Len(t, got, 3) {
		assert.Equal(t, "A", got[0].StoreName)
		assert.Equal(t, 2, got[0].AvailableCount)
		assert.Equal(t, 3, got[0].TotalCount)
		assert.Equal(t, 66.7, got[0].CoveragePercentage)

		assert.Equal(t, "B", got[1].StoreName)
		assert.Equal(t, 33.3, got[1].CoveragePercentage)

		assert.Equal(t, "C", got[2].StoreName)
		assert.Equal(t, 0, got[2].AvailableCount)
		assert.Equal(t, 0.0, got[2].CoveragePercentage)
	}
}

func TestComputeStoreAvailability_TiesKeepStoreOrder(t *testing.T) {
	stores := []model.Store{store(5, "Bakery"), store(4, "Market"), store(6, "Zoo Shop")}
	items := []model.ShoppingItem{itemAt(1, 4, 5), itemAt(2, 6)}

	got := ComputeStoreAvailability(stores, items)
	names := []string{got[0].StoreName, got[1].StoreName, got[2].StoreName}
	assert.Equal(t, []string{"Bakery", "Market", "Zoo Shop"}, names)
}

func TestComputeStoreAvailability_ItemWithoutProduct(t *testing.T) {
	items := []model.ShoppingItem{itemAt(1, 1), {ProductID: 2, Quantity: 1}}
	got := ComputeStoreAvailability([]model.Store{store(1, "A")}, items)
	assert.Equal(t, 50.0, got[0].CoveragePercentage)
}

func TestCoveragePercentage(t *testing.T) {
	tests := []struct {
		available, total int
		want             float64
	}{
		{2, 3, 66.7},
		{1, 3, 33.3},
		{3, 3, 100},
		{0, 5, 0},
		{1, 16, 6.2},  // 6.25 取偶
		{3, 16, 18.8}, // 18.75 取偶
		{5, 16, 31.2}, // 31.25 取偶
		{1, 8, 12.5},
		{1, 7, 14.3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoveragePercentage(tt.available, tt.total), "%d/%d", tt.available, tt.total)
	}
}
