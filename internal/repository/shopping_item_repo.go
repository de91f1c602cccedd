package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"family_shopping/internal/model"
)

// ==================== 接口定义 ====================

// ShoppingItemRepository 购物清单条目仓储接口
type ShoppingItemRepository interface {
	Create(ctx context.Context, item *model.ShoppingItem) error
	GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error)
	// Delete 返回条目是否存在
	Delete(ctx context.Context, id int64) (bool, error)

	// FindActiveByProduct 查找商品的未购买条目并加行锁 (SQLite 忽略锁)
	FindActiveByProduct(ctx context.Context, productID int64) (*model.ShoppingItem, error)

	// 数量
	AddQuantity(ctx context.Context, id int64, delta int) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// 购买状态
	MarkPurchased(ctx context.Context, id int64, at time.Time) (bool, error)
	DeletePurchased(ctx context.Context) (int64, error)
	DeletePurchasedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	HasPurchased(ctx context.Context) (bool, error)

	// 列表查询
	ListActive(ctx context.Context) ([]model.ShoppingItem, error)
	CountActive(ctx context.Context) (int64, error)
}

// ==================== 仓储实现 ====================

type shoppingItemRepo struct {
	db *gorm.DB
}

// NewShoppingItemRepository 创建购物清单仓储
func NewShoppingItemRepository(db *gorm.DB) ShoppingItemRepository {
	return &shoppingItemRepo{db: db}
}

func (r *shoppingItemRepo) Create(ctx context.Context, item *model.ShoppingItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *shoppingItemRepo) GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	var item model.ShoppingItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.ShoppingItem{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *shoppingItemRepo) FindActiveByProduct(ctx context.Context, productID int64) (*model.ShoppingItem, error) {
	var item model.ShoppingItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND is_purchased = ?", productID, false).
		Order("created_at ASC, id ASC").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingItemRepo) AddQuantity(ctx context.Context, id int64, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.ShoppingItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *shoppingItemRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&model.ShoppingItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// MarkPurchased 返回条目是否存在
func (r *shoppingItemRepo) MarkPurchased(ctx context.Context, id int64, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ShoppingItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_purchased": true,
			"purchased_at": at,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *shoppingItemRepo) DeletePurchased(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_purchased = ?", true).
		Delete(&model.ShoppingItem{})
	return result.RowsAffected, result.Error
}

func (r *shoppingItemRepo) DeletePurchasedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_purchased = ? AND purchased_at < ?", true, cutoff).
		Delete(&model.ShoppingItem{})
	return result.RowsAffected, result.Error
}

func (r *shoppingItemRepo) HasPurchased(ctx context.Context) (bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.ShoppingItem{}).
		Where("is_purchased = ?", true).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

// ListActive 未购买条目，先加入的在前；附带商品及其门店关联
func (r *shoppingItemRepo) ListActive(ctx context.Context) ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.ProductStores").
		Where("is_purchased = ?", false).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *shoppingItemRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShoppingItem{}).
		Where("is_purchased = ?", false).
		Count(&count).Error
	return count, err
}
