package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"family_shopping/internal/model"
)

// ==================== 接口定义 ====================

// RecipeRepository 菜谱仓储接口
type RecipeRepository interface {
	List(ctx context.Context) ([]model.Recipe, error)
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) (bool, error)
	Delete(ctx context.Context, id int64) error

	// ListByProductID 使用了该商品的菜谱，按名称排序
	ListByProductID(ctx context.Context, productID int64) ([]model.Recipe, error)

	// ReplaceProducts 用 productIDs 整体替换菜谱配料
	ReplaceProducts(ctx context.Context, recipeID int64, productIDs model.IDSet) error
}

// ==================== 仓储实现 ====================

type recipeRepo struct {
	db *gorm.DB
}

// NewRecipeRepository 创建菜谱仓储
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Preload("RecipeProducts").
		Order(orderByName).
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeProducts").
		First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepo) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Omit("RecipeProducts").Create(recipe).Error
}

func (r *recipeRepo) Update(ctx context.Context, recipe *model.Recipe) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"name":     recipe.Name,
			"servings": recipe.Servings,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *recipeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}

func (r *recipeRepo) ListByProductID(ctx context.Context, productID int64) ([]model.Recipe, error) {
	db := r.db.WithContext(ctx)
	sub := db.Model(&model.RecipeProduct{}).
		Select("recipe_id").
		Where("product_id = ?", productID)

	var recipes []model.Recipe
	err := db.Preload("RecipeProducts").
		Where("id IN (?)", sub).
		Order(orderByName).
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) ReplaceProducts(ctx context.Context, recipeID int64, productIDs model.IDSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeProduct{}).Error; err != nil {
			return err
		}
		rows := productIDs.RecipeProducts(recipeID)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
