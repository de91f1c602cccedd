package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"family_shopping/internal/model"
	"family_shopping/pkg/database"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(database.Options{
		Driver:   database.DriverSQLite,
		DSN:      ":memory:",
		LogLevel: "silent",
	}, model.All()...)
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func mustCreateStore(t *testing.T, uow *UnitOfWork, name string) *model.Store {
	t.Helper()
	s := &model.Store{Name: name}
	if err := uow.Stores.Create(context.Background(), s); err != nil {
		t.Fatalf("create store: %v", err)
	}
	return s
}

func mustCreateProduct(t *testing.T, uow *UnitOfWork, name, notes string, storeIDs ...int64) *model.Product {
	t.Helper()
	ctx := context.Background()
	p := &model.Product{Name: name, Notes: notes}
	if err := uow.Products.Create(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if len(storeIDs) > 0 {
		if err := uow.Products.ReplaceStores(ctx, p.ID, model.NewIDSet(storeIDs...)); err != nil {
			t.Fatalf("replace stores: %v", err)
		}
	}
	return p
}

func countRows(t *testing.T, db *gorm.DB, m interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Where(where, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func mustMarkPurchased(t *testing.T, uow *UnitOfWork, id int64, at time.Time) {
	t.Helper()
	found, err := uow.ShoppingItems.MarkPurchased(context.Background(), id, at)
	if err != nil || !found {
		t.Fatalf("标记已购买失败: id=%d found=%v err=%v", id, found, err)
	}
}
