package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
	"family_shopping/pkg/database"
)

// ==================== 测试辅助 ====================

func setupServiceTestDB(t *testing.T) *gorm.DB {
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

// fakeClock 每次调用前进一秒
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type countingRecorder struct {
	mu  sync.Mutex
	ops map[string]int64
}

func (r *countingRecorder) ObserveShoppingOp(op string, n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ops == nil {
		r.ops = map[string]int64{}
	}
	r.ops[op] += n
}

type fixture struct {
	db       *gorm.DB
	repos    *repository.UnitOfWork
	stores   *StoreService
	products *ProductService
	recipes  *RecipeService
	shopping *ShoppingService
	recorder *countingRecorder
	clock    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupServiceTestDB(t)
	repos := repository.NewUnitOfWork(db)
	rec := &countingRecorder{}
	clock := newFakeClock()
	shopping := NewShoppingService(repos, rec)
	shopping.Now = clock.Now
	return &fixture{
		db:       db,
		repos:    repos,
		stores:   NewStoreService(repos),
		products: NewProductService(repos),
		recipes:  NewRecipeService(repos),
		shopping: shopping,
		recorder: rec,
		clock:    clock,
	}
}

func (f *fixture) store(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.stores.Create(context.Background(), dto.CreateStoreReq{Name: name})
	if err != nil {
		t.Fatalf("create store %s: %v", name, err)
	}
	return id
}

func (f *fixture) product(t *testing.T, name string, storeIDs ...int64) int64 {
	t.Helper()
	id, err := f.products.Create(context.Background(), dto.CreateProductReq{Name: name, StoreIDs: storeIDs})
	if err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return id
}

func dtoProduct(name, notes string, storeIDs ...int64) dto.CreateProductReq {
	return dto.CreateProductReq{Name: name, Notes: notes, StoreIDs: storeIDs}
}
