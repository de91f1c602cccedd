package repository

import (
	"context"
	"testing"

	"family_shopping/internal/model"
)

func TestStoreRepo_ListOrderedByName(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	mustCreateStore(t, uow, "lidl")
	mustCreateStore(t, uow, "Aldi")
	mustCreateStore(t, uow, "Costco")

	stores, err := uow.Stores.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Aldi", "Costco", "lidl"}
	if len(stores) != len(want) {
		t.Fatalf("len(stores) = %d, want %d", len(stores), len(want))
	}
	for i, s := range stores {
		if s.Name != want[i] {
			t.Errorf("stores[%d].Name = %s, want %s", i, s.Name, want[i])
		}
	}
}

func TestStoreRepo_GetByID_NotFound(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewStoreRepository(db)

	store, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if store != nil {
		t.Errorf("GetByID() = %+v, want nil", store)
	}
}

func TestStoreRepo_Update(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	s := mustCreateStore(t, uow, "Aldi")

	found, err := uow.Stores.Update(ctx, &model.Store{BaseModel: model.BaseModel{ID: s.ID}, Name: "Aldi Süd", Notes: "near station"})
	if err != nil || !found {
		t.Fatalf("Update() = %v, %v; want true, nil", found, err)
	}
	got, _ := uow.Stores.GetByID(ctx, s.ID)
	if got.Name != "Aldi Süd" || got.Notes != "near station" {
		t.Errorf("after Update got %+v", got)
	}

	found, err = uow.Stores.Update(ctx, &model.Store{BaseModel: model.BaseModel{ID: 999}, Name: "ghost"})
	if err != nil {
		t.Fatalf("Update(absent) error = %v", err)
	}
	if found {
		t.Error("Update(absent) reported found")
	}
	if n := countRows(t, db, &model.Store{}, "1 = 1"); n != 1 {
		t.Errorf("store rows = %d, want 1", n)
	}
}

func TestStoreRepo_DeleteRemovesProductStores(t *testing.T) {
	db := setupRepoTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	a := mustCreateStore(t, uow, "A")
	b := mustCreateStore(t, uow, "B")
	p := mustCreateProduct(t, uow, "Milk", "", a.ID, b.ID)

	if err := uow.Stores.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n := countRows(t, db, &model.ProductStore{}, "store_id = ?", a.ID); n != 0 {
		t.Errorf("product_stores for deleted store = %d, want 0", n)
	}
	if n := countRows(t, db, &model.ProductStore{}, "product_id = ?", p.ID); n != 1 {
		t.Errorf("product_stores for product = %d, want 1", n)
	}

	// 再次删除为 no-op
	if err := uow.Stores.Delete(ctx, a.ID); err != nil {
		t.Errorf("Delete(absent) error = %v", err)
	}
}
