package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// orderByName 列表统一排序：名称不区分大小写，其次按 id
const orderByName = "LOWER(name) ASC, id ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE 通配符，配合 ESCAPE '\' 使用
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ==================== 事务支持 ====================

// UnitOfWork 仓储集合（事务）
type UnitOfWork struct {
	db            *gorm.DB
	Stores        StoreRepository
	Products      ProductRepository
	Recipes       RecipeRepository
	ShoppingItems ShoppingItemRepository
}

// NewUnitOfWork 创建工作单元
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:            db,
		Stores:        NewStoreRepository(db),
		Products:      NewProductRepository(db),
		Recipes:       NewRecipeRepository(db),
		ShoppingItems: NewShoppingItemRepository(db),
	}
}

// Transaction 执行事务。fn 内只能使用 txUow 的仓储，
// SQLite 只有一个连接，使用外层仓储会死锁。
func (u *UnitOfWork) Transaction(ctx context.Context, fn func(txUow *UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitOfWork(tx))
	})
}

// Ping 检查数据库连通性
func (u *UnitOfWork) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
