package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
)

// ErrProductNotFound 加入清单的商品不存在
var ErrProductNotFound = errors.New("product not found")

// 购物清单操作名，用于指标
const (
	OpAdd      = "add"
	OpMerge    = "merge"
	OpPurchase = "purchase"
	OpRemove   = "remove"
	OpClear    = "clear"
	OpPurge    = "purge"
)

// Recorder 记录购物清单操作次数
type Recorder interface {
	ObserveShoppingOp(op string, n int64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveShoppingOp(string, int64) {}

// ShoppingService 购物清单
//
// 同一商品最多一条未购买条目：AddItem 先查后写，在事务里对已有条目加行锁。
// 两个并发请求同时首次加入同一商品时仍可能各插一行，这是已知限制，没有唯一约束兜底。
type ShoppingService struct {
	Repos    *repository.UnitOfWork
	Recorder Recorder
	Now      func() time.Time
}

func NewShoppingService(repos *repository.UnitOfWork, recorder Recorder) *ShoppingService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ShoppingService{
		Repos:    repos,
		Recorder: recorder,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddItem 加入清单。已有未购买条目则合并数量，否则新建。返回条目 ID。
// 合并后数量 <= 0 时删除该条目并返回 0；商品没有未购买条目且 quantity <= 0 时什么都不做。
func (s *ShoppingService) AddItem(ctx context.Context, productID int64, quantity int) (int64, error) {
	var (
		id int64
		op string
	)
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		existing, err := tx.ShoppingItems.FindActiveByProduct(ctx, productID)
		if err != nil {
			return err
		}

		if existing != nil {
			op = OpMerge
			merged := existing.Quantity + quantity
			if merged <= 0 {
				op = OpRemove
				_, err = tx.ShoppingItems.Delete(ctx, existing.ID)
				return err
			}
			id = existing.ID
			return tx.ShoppingItems.AddQuantity(ctx, existing.ID, quantity)
		}

		if quantity <= 0 {
			return nil
		}

		product, err := tx.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		item := &model.ShoppingItem{
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: s.Now(),
		}
		if err := tx.ShoppingItems.Create(ctx, item); err != nil {
			return err
		}
		id, op = item.ID, OpAdd
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, ErrProductNotFound
		}
		return 0, fmt.Errorf("add item for product %d: %w", productID, err)
	}

	if op != "" {
		s.Recorder.ObserveShoppingOp(op, 1)
	}
	return id, nil
}

// SetQuantity 设置数量。条目不存在为 no-op；quantity <= 0 删除条目。
func (s *ShoppingService) SetQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, itemID)
	}
	if err := s.Repos.ShoppingItems.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return fmt.Errorf("set quantity of item %d: %w", itemID, err)
	}
	return nil
}

// AdjustQuantity 在当前数量上加 delta (首页的 +/- 按钮)
func (s *ShoppingService) AdjustQuantity(ctx context.Context, itemID int64, delta int) error {
	removed := false
	err := s.Repos.Transaction(ctx, func(tx *repository.UnitOfWork) error {
		item, err := tx.ShoppingItems.GetByID(ctx, itemID)
		if err != nil || item == nil {
			return err
		}
		next := item.Quantity + delta
		if next <= 0 {
			removed, err = tx.ShoppingItems.Delete(ctx, itemID)
			return err
		}
		return tx.ShoppingItems.UpdateQuantity(ctx, itemID, next)
	})
	if err != nil {
		return fmt.Errorf("adjust quantity of item %d: %w", itemID, err)
	}
	if removed {
		s.Recorder.ObserveShoppingOp(OpRemove, 1)
	}
	return nil
}

// MarkPurchased 标记已购买并刷新 purchased_at。已购买的条目不能回到未购买。
func (s *ShoppingService) MarkPurchased(ctx context.Context, itemID int64) error {
	found, err := s.Repos.ShoppingItems.MarkPurchased(ctx, itemID, s.Now())
	if err != nil {
		return fmt.Errorf("mark item %d purchased: %w", itemID, err)
	}
	if found {
		s.Recorder.ObserveShoppingOp(OpPurchase, 1)
	}
	return nil
}

// RemoveItem 删除条目，不存在为 no-op
func (s *ShoppingService) RemoveItem(ctx context.Context, itemID int64) error {
	removed, err := s.Repos.ShoppingItems.Delete(ctx, itemID)
	if err != nil {
		return fmt.Errorf("remove item %d: %w", itemID, err)
	}
	if removed {
		s.Recorder.ObserveShoppingOp(OpRemove, 1)
	}
	return nil
}

// ClearPurchased 删除全部已购买条目，返回删除数量
func (s *ShoppingService) ClearPurchased(ctx context.Context) (int64, error) {
	n, err := s.Repos.ShoppingItems.DeletePurchased(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear purchased items: %w", err)
	}
	s.Recorder.ObserveShoppingOp(OpClear, n)
	return n, nil
}

// PurgePurchasedBefore 删除 cutoff 之前购买的条目 (定时清理)
func (s *ShoppingService) PurgePurchasedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := s.Repos.ShoppingItems.DeletePurchasedBefore(ctx, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge purchased items before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	s.Recorder.ObserveShoppingOp(OpPurge, n)
	return n, nil
}

// ListActive 未购买条目，先加入的在前
func (s *ShoppingService) ListActive(ctx context.Context) ([]dto.ShoppingItemResp, error) {
	items, err := s.Repos.ShoppingItems.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}
	resp := make([]dto.ShoppingItemResp, 0, len(items))
	for i := range items {
		resp = append(resp, s.convertToResp(&items[i]))
	}
	return resp, nil
}

func (s *ShoppingService) HasPurchased(ctx context.Context) (bool, error) {
	ok, err := s.Repos.ShoppingItems.HasPurchased(ctx)
	if err != nil {
		return false, fmt.Errorf("check purchased items: %w", err)
	}
	return ok, nil
}

// ComputeStoreAvailability 每次调用都从当前数据重新计算，不缓存
func (s *ShoppingService) ComputeStoreAvailability(ctx context.Context) ([]dto.StoreAvailabilityResp, error) {
	items, err := s.Repos.ShoppingItems.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}
	if len(items) == 0 {
		return []dto.StoreAvailabilityResp{}, nil
	}

	stores, err := s.Repos.Stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return ComputeStoreAvailability(stores, items), nil
}

func (s *ShoppingService) convertToResp(item *model.ShoppingItem) dto.ShoppingItemResp {
	resp := dto.ShoppingItemResp{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		StoreIDs:  []int64{},
		CreatedAt: item.CreatedAt,
	}
	if item.Product != nil {
		resp.ProductName = item.Product.Name
		resp.ProductNotes = item.Product.Notes
		resp.StoreIDs = item.Product.StoreIDs().Int64s()
	}
	return resp
}
