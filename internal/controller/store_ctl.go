package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/service"
)

type StoreController struct {
	storeService *service.StoreService
	log          *zap.Logger
}

func NewStoreController(storeService *service.StoreService, log *zap.Logger) *StoreController {
	return &StoreController{storeService: storeService, log: log.Named("store")}
}

// List 门店列表
// @Summary 门店列表
// @Description 按名称排序 (不区分大小写)
// @Tags Store (门店)
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/stores [get]
func (s *StoreController) List(c *gin.Context) {
	list, err := s.storeService.List(c.Request.Context())
	if err != nil {
		respondError(c, s.log, "StoreController.List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Get 门店详情
// @Summary 门店详情
// @Tags Store (门店)
// @Produce json
// @Param id path int true "门店 ID"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} map[string]string "门店不存在"
// @Router /api/stores/{id} [get]
func (s *StoreController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	store, err := s.storeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, s.log, "StoreController.Get", err)
		return
	}
	if store == nil {
		notFound(c, "store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": store})
}

// Create 新建门店
// @Summary 新建门店
// @Tags Store (门店)
// @Accept json
// @Produce json
// @Param request body dto.CreateStoreReq true "门店"
// @Success 200 {object} map[string]interface{} "id"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/stores [post]
func (s *StoreController) Create(c *gin.Context) {
	var req dto.CreateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.storeService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, s.log, "StoreController.Create", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update 编辑门店
// @Summary 编辑门店
// @Tags Store (门店)
// @Accept json
// @Produce json
// @Param id path int true "门店 ID"
// @Param request body dto.UpdateStoreReq true "门店"
// @Success 200 {object} map[string]string "success"
// @Failure 404 {object} map[string]string "门店不存在"
// @Router /api/stores/{id} [put]
func (s *StoreController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	found, err := s.storeService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, s.log, "StoreController.Update", err)
		return
	}
	if !found {
		notFound(c, "store")
		return
	}
	success(c)
}

// Delete 删除门店，不存在也返回成功
// @Summary 删除门店
// @Tags Store (门店)
// @Param id path int true "门店 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/stores/{id} [delete]
func (s *StoreController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.storeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, s.log, "StoreController.Delete", err)
		return
	}
	success(c)
}
