package service

import (
	"context"
	"fmt"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
)

type ProductService struct {
	Repos *repository.UnitOfWork
}

func NewProductService(repos *repository.UnitOfWork) *ProductService {
	return &ProductService{Repos: repos}
}

func (s *ProductService) List(ctx context.Context) ([]dto.ProductResp, error) {
	products, err := s.Repos.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return s.convertList(products), nil
}

// Search 名称或备注模糊匹配，term 为空等同 List
func (s *ProductService) Search(ctx context.Context, term string) ([]dto.ProductResp, error) {
	products, err := s.Repos.Products.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", term, err)
	}
	return s.convertList(products), nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*dto.ProductResp, error) {
	product, err := s.Repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if product == nil {
		return nil, nil
	}
	resp := s.convertToResp(product)
	return &resp, nil
}

// Create 新建商品并写入可购门店，同一事务
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductReq) (int64, error) {
	product := &model.Product{Name: cleanName(req.Name), Notes: req.Notes}
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		if err := tx.Products.Create(ctx, product); err != nil {
			return err
		}
		return tx.Products.ReplaceStores(ctx, product.ID, model.NewIDSet(req.StoreIDs...))
	})
	if err != nil {
		return 0, fmt.Errorf("create product: %w", translateRefErr(err))
	}
	return product.ID, nil
}

// Update 更新商品并整体替换门店集合。商品不存在时返回 false 且不写入任何数据。
func (s *ProductService) Update(ctx context.Context, id int64, req dto.UpdateProductReq) (bool, error) {
	var found bool
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		var err error
		product := &model.Product{BaseModel: model.BaseModel{ID: id}, Name: cleanName(req.Name), Notes: req.Notes}
		if found, err = tx.Products.Update(ctx, product); err != nil || !found {
			return err
		}
		return tx.Products.ReplaceStores(ctx, id, model.NewIDSet(req.StoreIDs...))
	})
	if err != nil {
		return false, fmt.Errorf("update product %d: %w", id, translateRefErr(err))
	}
	return found, nil
}

// Delete 级联删除门店关联、菜谱关联、购物清单条目
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.Repos.Products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (s *ProductService) convertList(products []model.Product) []dto.ProductResp {
	resp := make([]dto.ProductResp, 0, len(products))
	for i := range products {
		resp = append(resp, s.convertToResp(&products[i]))
	}
	return resp
}

func (s *ProductService) convertToResp(p *model.Product) dto.ProductResp {
	return dto.ProductResp{
		ID:        p.ID,
		Name:      p.Name,
		Notes:     p.Notes,
		StoreIDs:  p.StoreIDs().Int64s(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
