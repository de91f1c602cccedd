package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"family_shopping/internal/model"
)

// ==================== 接口定义 ====================

// StoreRepository 门店仓储接口
type StoreRepository interface {
	List(ctx context.Context) ([]model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	Create(ctx context.Context, store *model.Store) error
	Update(ctx context.Context, store *model.Store) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository 创建门店仓储
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) List(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Order(orderByName).
		Find(&stores).Error
	return stores, err
}

// GetByID 不存在时返回 (nil, nil)
func (r *storeRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Omit("ProductStores").Create(store).Error
}

// Update 只更新 name/notes，返回记录是否存在
func (r *storeRepo) Update(ctx context.Context, store *model.Store) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("id = ?", store.ID).
		Updates(map[string]interface{}{
			"name":  store.Name,
			"notes": store.Notes,
		})
	return result.RowsAffected > 0, result.Error
}

// Delete 删除门店及其商品关联，记录不存在时为 no-op
func (r *storeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", id).Delete(&model.ProductStore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Store{}, id).Error
	})
}
