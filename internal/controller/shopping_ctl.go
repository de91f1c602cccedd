package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/service"
)

type ShoppingController struct {
	shoppingService *service.ShoppingService
	log             *zap.Logger
}

func NewShoppingController(shoppingService *service.ShoppingService, log *zap.Logger) *ShoppingController {
	return &ShoppingController{shoppingService: shoppingService, log: log.Named("shopping")}
}

// ListActive 未购买条目
// @Summary 购物清单
// @Description 未购买条目，先加入的在前，附带商品名称、备注、可购门店
// @Tags Shopping (购物清单)
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Router /api/shopping/items [get]
func (s *ShoppingController) ListActive(c *gin.Context) {
	items, err := s.shoppingService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, s.log, "ShoppingController.ListActive", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// AddItem 加入清单
// @Summary 加入清单
// @Description 商品已有未购买条目时合并数量
// @Tags Shopping (购物清单)
// @Accept json
// @Produce json
// @Param request body dto.AddItemReq true "商品与数量"
// @Success 200 {object} map[string]interface{} "id"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/shopping/items [post]
func (s *ShoppingController) AddItem(c *gin.Context) {
	var req dto.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.shoppingService.AddItem(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, s.log, "ShoppingController.AddItem", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// SetQuantity 设置数量，<= 0 删除条目
// @Summary 设置数量
// @Tags Shopping (购物清单)
// @Accept json
// @Produce json
// @Param id path int true "条目 ID"
// @Param request body dto.SetQuantityReq true "数量"
// @Success 200 {object} map[string]string "success"
// @Router /api/shopping/items/{id}/quantity [put]
func (s *ShoppingController) SetQuantity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SetQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.shoppingService.SetQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		respondError(c, s.log, "ShoppingController.SetQuantity", err)
		return
	}
	success(c)
}

// Increment 数量 +1
// @Summary 数量加一
// @Tags Shopping (购物清单)
// @Param id path int true "条目 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/shopping/items/{id}/increment [post]
func (s *ShoppingController) Increment(c *gin.Context) {
	s.adjust(c, 1, "ShoppingController.Increment")
}

// Decrement 数量 -1，减到 0 删除条目
// @Summary 数量减一
// @Tags Shopping (购物清单)
// @Param id path int true "条目 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/shopping/items/{id}/decrement [post]
func (s *ShoppingController) Decrement(c *gin.Context) {
	s.adjust(c, -1, "ShoppingController.Decrement")
}

func (s *ShoppingController) adjust(c *gin.Context, delta int, op string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.shoppingService.AdjustQuantity(c.Request.Context(), id, delta); err != nil {
		respondError(c, s.log, op, err)
		return
	}
	success(c)
}

// MarkPurchased 标记已购买
// @Summary 标记已购买
// @Tags Shopping (购物清单)
// @Param id path int true "条目 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/shopping/items/{id}/purchase [post]
func (s *ShoppingController) MarkPurchased(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.shoppingService.MarkPurchased(c.Request.Context(), id); err != nil {
		respondError(c, s.log, "ShoppingController.MarkPurchased", err)
		return
	}
	success(c)
}

// RemoveItem 删除条目
// @Summary 删除条目
// @Tags Shopping (购物清单)
// @Param id path int true "条目 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/shopping/items/{id} [delete]
func (s *ShoppingController) RemoveItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.shoppingService.RemoveItem(c.Request.Context(), id); err != nil {
		respondError(c, s.log, "ShoppingController.RemoveItem", err)
		return
	}
	success(c)
}

// ClearPurchased 清除全部已购买条目
// @Summary 清除已购买
// @Tags Shopping (购物清单)
// @Produce json
// @Success 200 {object} dto.ClearPurchasedResp
// @Router /api/shopping/purchased [delete]
func (s *ShoppingController) ClearPurchased(c *gin.Context) {
	n, err := s.shoppingService.ClearPurchased(c.Request.Context())
	if err != nil {
		respondError(c, s.log, "ShoppingController.ClearPurchased", err)
		return
	}
	c.JSON(http.StatusOK, dto.ClearPurchasedResp{Removed: n})
}

// HasPurchased 是否存在已购买条目
// @Summary 是否有已购买条目
// @Tags Shopping (购物清单)
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Router /api/shopping/purchased/exists [get]
func (s *ShoppingController) HasPurchased(c *gin.Context) {
	ok, err := s.shoppingService.HasPurchased(c.Request.Context())
	if err != nil {
		respondError(c, s.log, "ShoppingController.HasPurchased", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ok})
}

// Availability 门店覆盖率
// @Summary 门店覆盖率
// @Description 每个门店能买到多少条未购买条目，按覆盖率降序；清单为空时返回空列表
// @Tags Shopping (购物清单)
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Router /api/shopping/availability [get]
func (s *ShoppingController) Availability(c *gin.Context) {
	list, err := s.shoppingService.ComputeStoreAvailability(c.Request.Context())
	if err != nil {
		respondError(c, s.log, "ShoppingController.Availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
