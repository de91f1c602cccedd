package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"family_shopping/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) (bool, error)
	Delete(ctx context.Context, id int64) error

	// Search 名称或备注包含 term (不区分大小写)，term 为空返回全部
	Search(ctx context.Context, term string) ([]model.Product, error)

	// ReplaceStores 用 storeIDs 整体替换商品的可购门店
	ReplaceStores(ctx context.Context, productID int64, storeIDs model.IDSet) error
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("ProductStores").
		Order(orderByName).
		Find(&products).Error
	return products, err
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).
		Preload("ProductStores").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).
		Omit("ProductStores", "RecipeProducts").
		Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":  product.Name,
			"notes": product.Notes,
		})
	return result.RowsAffected > 0, result.Error
}

// Delete 删除商品，同时删除门店关联、菜谱关联和购物清单条目
func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ShoppingItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.RecipeProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductStore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}

func (r *productRepo) Search(ctx context.Context, term string) ([]model.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx)
	}

	// 两侧都交给数据库的 LOWER，SQLite 上由 pkg/database 注册的 Unicode 版本处理
	pattern := "%" + escapeLike(term) + "%"
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("ProductStores").
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(notes) LIKE LOWER(?) ESCAPE '\\'", pattern, pattern).
		Order(orderByName).
		Find(&products).Error
	return products, err
}

func (r *productRepo) ReplaceStores(ctx context.Context, productID int64, storeIDs model.IDSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&model.ProductStore{}).Error; err != nil {
			return err
		}
		rows := storeIDs.ProductStores(productID)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
