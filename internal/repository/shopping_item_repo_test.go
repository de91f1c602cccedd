package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family_shopping/internal/model"
)

func TestShoppingItemRepo_ListActive(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	s := mustCreateStore(t, uow, "A")
	milk := mustCreateProduct(t, uow, "Milk", "2%", s.ID)
	bread := mustCreateProduct(t, uow, "Bread", "")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	later := &model.ShoppingItem{ProductID: milk.ID, Quantity: 2, CreatedAt: base.Add(time.Minute)}
	earlier := &model.ShoppingItem{ProductID: bread.ID, Quantity: 1, CreatedAt: base}
	bought := &model.ShoppingItem{ProductID: bread.ID, Quantity: 1, CreatedAt: base.Add(-time.Hour)}
	for _, it := range []*model.ShoppingItem{later, earlier, bought} {
		require.NoError(t, uow.ShoppingItems.Create(ctx, it))
	}
	mustMarkPurchased(t, uow, bought.ID, base)

	items, err := uow.ShoppingItems.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, earlier.ID, items[0].ID)
	assert.Equal(t, later.ID, items[1].ID)
	require.NotNil(t, items[1].Product)
	assert.Equal(t, "Milk", items[1].Product.Name)
	assert.Equal(t, model.IDSet{s.ID}, items[1].Product.StoreIDs())

	count, err := uow.ShoppingItems.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestShoppingItemRepo_FindActiveByProduct(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	p := mustCreateProduct(t, uow, "Milk", "")

	got, err := uow.ShoppingItems.FindActiveByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	purchased := &model.ShoppingItem{ProductID: p.ID, Quantity: 1}
	require.NoError(t, uow.ShoppingItems.Create(ctx, purchased))
	mustMarkPurchased(t, uow, purchased.ID, time.Now().UTC())

	got, err = uow.ShoppingItems.FindActiveByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "purchased items are not active")

	active := &model.ShoppingItem{ProductID: p.ID, Quantity: 3}
	require.NoError(t, uow.ShoppingItems.Create(ctx, active))

	err = uow.Transaction(ctx, func(tx *UnitOfWork) error {
		item, err := tx.ShoppingItems.FindActiveByProduct(ctx, p.ID)
		if err != nil {
			return err
		}
		require.NotNil(t, item)
		assert.Equal(t, active.ID, item.ID)
		return tx.ShoppingItems.AddQuantity(ctx, item.ID, 2)
	})
	require.NoError(t, err)

	got, err = uow.ShoppingItems.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
}

func TestShoppingItemRepo_PurchasedLifecycle(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	p := mustCreateProduct(t, uow, "Milk", "")
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	old := &model.ShoppingItem{ProductID: p.ID, Quantity: 1}
	recent := &model.ShoppingItem{ProductID: p.ID, Quantity: 1}
	active := &model.ShoppingItem{ProductID: p.ID, Quantity: 1}
	for _, it := range []*model.ShoppingItem{old, recent, active} {
		require.NoError(t, uow.ShoppingItems.Create(ctx, it))
	}

	has, err := uow.ShoppingItems.HasPurchased(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	mustMarkPurchased(t, uow, old.ID, now.AddDate(0, 0, -10))
	mustMarkPurchased(t, uow, recent.ID, now.AddDate(0, 0, -1))

	has, err = uow.ShoppingItems.HasPurchased(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	found, err := uow.ShoppingItems.MarkPurchased(ctx, 9999, now)
	require.NoError(t, err)
	assert.False(t, found)

	n, err := uow.ShoppingItems.DeletePurchasedBefore(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = uow.ShoppingItems.DeletePurchased(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := uow.ShoppingItems.GetByID(ctx, active.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsPurchased)
	assert.Nil(t, got.PurchasedAt)

	deleted, err := uow.ShoppingItems.Delete(ctx, active.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = uow.ShoppingItems.Delete(ctx, active.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
