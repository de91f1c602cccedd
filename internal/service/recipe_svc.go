package service

import (
	"context"
	"fmt"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
)

type RecipeService struct {
	Repos *repository.UnitOfWork
}

func NewRecipeService(repos *repository.UnitOfWork) *RecipeService {
	return &RecipeService{Repos: repos}
}

func (s *RecipeService) List(ctx context.Context) ([]dto.RecipeResp, error) {
	recipes, err := s.Repos.Recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return s.convertList(recipes), nil
}

// ListByProduct 使用该商品的菜谱，按名称排序
func (s *RecipeService) ListByProduct(ctx context.Context, productID int64) ([]dto.RecipeResp, error) {
	recipes, err := s.Repos.Recipes.ListByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipes of product %d: %w", productID, err)
	}
	return s.convertList(recipes), nil
}

func (s *RecipeService) Get(ctx context.Context, id int64) (*dto.RecipeResp, error) {
	recipe, err := s.Repos.Recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	if recipe == nil {
		return nil, nil
	}
	resp := s.convertToResp(recipe)
	return &resp, nil
}

func (s *RecipeService) Create(ctx context.Context, req dto.CreateRecipeReq) (int64, error) {
	recipe := &model.Recipe{Name: cleanName(req.Name), Servings: req.Servings}
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		if err := tx.Recipes.Create(ctx, recipe); err != nil {
			return err
		}
		return tx.Recipes.ReplaceProducts(ctx, recipe.ID, model.NewIDSet(req.ProductIDs...))
	})
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", translateRefErr(err))
	}
	return recipe.ID, nil
}

func (s *RecipeService) Update(ctx context.Context, id int64, req dto.UpdateRecipeReq) (bool, error) {
	var found bool
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		var err error
		recipe := &model.Recipe{BaseModel: model.BaseModel{ID: id}, Name: cleanName(req.Name), Servings: req.Servings}
		if found, err = tx.Recipes.Update(ctx, recipe); err != nil || !found {
			return err
		}
		return tx.Recipes.ReplaceProducts(ctx, id, model.NewIDSet(req.ProductIDs...))
	})
	if err != nil {
		return false, fmt.Errorf("update recipe %d: %w", id, translateRefErr(err))
	}
	return found, nil
}

func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	if err := s.Repos.Recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	return nil
}

func (s *RecipeService) convertList(recipes []model.Recipe) []dto.RecipeResp {
	resp := make([]dto.RecipeResp, 0, len(recipes))
	for i := range recipes {
		resp = append(resp, s.convertToResp(&recipes[i]))
	}
	return resp
}

func (s *RecipeService) convertToResp(r *model.Recipe) dto.RecipeResp {
	return dto.RecipeResp{
		ID:         r.ID,
		Name:       r.Name,
		Servings:   r.Servings,
		ProductIDs: r.ProductIDs().Int64s(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
