package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family_shopping/internal/model"
)

func TestProductRepo_Search(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	mustCreateProduct(t, uow, "Whole Milk", "")
	mustCreateProduct(t, uow, "Bread", "sourdough from the bakery")
	mustCreateProduct(t, uow, "Eggs", "free range, 100% organic")
	mustCreateProduct(t, uow, "Äpfel", "")
	mustCreateProduct(t, uow, "Milch", "Öko")

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term returns all", "", []string{"Bread", "Eggs", "Milch", "Whole Milk", "Äpfel"}},
		{"blank term returns all", "   ", []string{"Bread", "Eggs", "Milch", "Whole Milk", "Äpfel"}},
		{"name match is case-insensitive", "MILK", []string{"Whole Milk"}},
		{"notes-only match", "bakery", []string{"Bread"}},
		{"non-ascii exact case", "Äpfel", []string{"Äpfel"}},
		{"non-ascii lower case", "äpfel", []string{"Äpfel"}},
		{"non-ascii upper case", "ÄPFEL", []string{"Äpfel"}},
		{"non-ascii notes", "öko", []string{"Milch"}},
		{"percent is literal", "100%", []string{"Eggs"}},
		{"underscore is literal", "_", []string{}},
		{"no match", "caviar", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := uow.Products.Search(ctx, tt.term)
			require.NoError(t, err)
			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProductRepo_ReplaceStores(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	a := mustCreateStore(t, uow, "A")
	b := mustCreateStore(t, uow, "B")
	c := mustCreateStore(t, uow, "C")
	p := mustCreateProduct(t, uow, "Milk", "", a.ID, b.ID)

	require.NoError(t, uow.Products.ReplaceStores(ctx, p.ID, model.NewIDSet(c.ID)))

	var rows []model.ProductStore
	require.NoError(t, db.Where("product_id = ?", p.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, c.ID, rows[0].StoreID)

	got, err := uow.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IDSet{c.ID}, got.StoreIDs())

	require.NoError(t, uow.Products.ReplaceStores(ctx, p.ID, model.NewIDSet()))
	assert.Equal(t, int64(0), countRows(t, db, &model.ProductStore{}, "product_id = ?", p.ID))
}

func TestProductRepo_DeleteCascades(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	s := mustCreateStore(t, uow, "A")
	p := mustCreateProduct(t, uow, "Flour", "", s.ID)
	other := mustCreateProduct(t, uow, "Sugar", "", s.ID)

	r := &model.Recipe{Name: "Cake", Servings: 8}
	require.NoError(t, uow.Recipes.Create(ctx, r))
	require.NoError(t, uow.Recipes.ReplaceProducts(ctx, r.ID, model.NewIDSet(p.ID, other.ID)))
	require.NoError(t, uow.ShoppingItems.Create(ctx, &model.ShoppingItem{ProductID: p.ID, Quantity: 1}))

	require.NoError(t, uow.Products.Delete(ctx, p.ID))

	assert.Equal(t, int64(0), countRows(t, db, &model.ProductStore{}, "product_id = ?", p.ID))
	assert.Equal(t, int64(0), countRows(t, db, &model.RecipeProduct{}, "product_id = ?", p.ID))
	assert.Equal(t, int64(0), countRows(t, db, &model.ShoppingItem{}, "product_id = ?", p.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.RecipeProduct{}, "product_id = ?", other.ID))

	got, err := uow.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, uow.Products.Delete(ctx, p.ID))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}
