package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"family_shopping/internal/api/dto"
)

// DashboardService 首页：商品列表、购物清单、门店覆盖率
type DashboardService struct {
	Products *ProductService
	Shopping *ShoppingService
}

func NewDashboardService(products *ProductService, shopping *ShoppingService) *DashboardService {
	return &DashboardService{Products: products, Shopping: shopping}
}

// Load 四个查询并发执行，任一失败即返回
func (s *DashboardService) Load(ctx context.Context) (*dto.DashboardResp, error) {
	var resp dto.DashboardResp
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resp.Products, err = s.Products.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Items, err = s.Shopping.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Availability, err = s.Shopping.ComputeStoreAvailability(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.HasPurchased, err = s.Shopping.HasPurchased(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
