package service

import (
	"context"
	"fmt"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
)

type StoreService struct {
	Repos *repository.UnitOfWork
}

func NewStoreService(repos *repository.UnitOfWork) *StoreService {
	return &StoreService{Repos: repos}
}

// List 按名称排序
func (s *StoreService) List(ctx context.Context) ([]dto.StoreResp, error) {
	stores, err := s.Repos.Stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	resp := make([]dto.StoreResp, 0, len(stores))
	for i := range stores {
		resp = append(resp, s.convertToResp(&stores[i]))
	}
	return resp, nil
}

// Get 不存在返回 nil
func (s *StoreService) Get(ctx context.Context, id int64) (*dto.StoreResp, error) {
	store, err := s.Repos.Stores.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store %d: %w", id, err)
	}
	if store == nil {
		return nil, nil
	}
	resp := s.convertToResp(store)
	return &resp, nil
}

func (s *StoreService) Create(ctx context.Context, req dto.CreateStoreReq) (int64, error) {
	store := &model.Store{Name: cleanName(req.Name), Notes: req.Notes}
	if err := s.Repos.Stores.Create(ctx, store); err != nil {
		return 0, fmt.Errorf("create store: %w", err)
	}
	return store.ID, nil
}

// Update 返回门店是否存在，不存在时什么都不做
func (s *StoreService) Update(ctx context.Context, id int64, req dto.UpdateStoreReq) (bool, error) {
	store := &model.Store{BaseModel: model.BaseModel{ID: id}, Name: cleanName(req.Name), Notes: req.Notes}
	found, err := s.Repos.Stores.Update(ctx, store)
	if err != nil {
		return false, fmt.Errorf("update store %d: %w", id, err)
	}
	return found, nil
}

// Delete 同时删除该门店的商品关联
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	if err := s.Repos.Stores.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete store %d: %w", id, err)
	}
	return nil
}

func (s *StoreService) convertToResp(store *model.Store) dto.StoreResp {
	return dto.StoreResp{
		ID:        store.ID,
		Name:      store.Name,
		Notes:     store.Notes,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}
