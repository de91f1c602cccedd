package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/service"
)

type RecipeController struct {
	recipeService *service.RecipeService
	log           *zap.Logger
}

func NewRecipeController(recipeService *service.RecipeService, log *zap.Logger) *RecipeController {
	return &RecipeController{recipeService: recipeService, log: log.Named("recipe")}
}

// List 菜谱列表
// @Summary 菜谱列表
// @Description 传 product_id 时只返回使用该商品的菜谱
// @Tags Recipe (菜谱)
// @Produce json
// @Param product_id query int false "商品 ID"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/recipes [get]
func (r *RecipeController) List(c *gin.Context) {
	var (
		list []dto.RecipeResp
		err  error
	)
	if raw := c.Query("product_id"); raw != "" {
		productID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || productID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
			return
		}
		list, err = r.recipeService.ListByProduct(c.Request.Context(), productID)
	} else {
		list, err = r.recipeService.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, r.log, "RecipeController.List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Get 菜谱详情
// @Summary 菜谱详情
// @Tags Recipe (菜谱)
// @Produce json
// @Param id path int true "菜谱 ID"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} map[string]string "菜谱不存在"
// @Router /api/recipes/{id} [get]
func (r *RecipeController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := r.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, r.log, "RecipeController.Get", err)
		return
	}
	if recipe == nil {
		notFound(c, "recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recipe})
}

// Create 新建菜谱
// @Summary 新建菜谱
// @Tags Recipe (菜谱)
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipeReq true "菜谱及配料"
// @Success 200 {object} map[string]interface{} "id"
// @Failure 400 {object} map[string]string "参数错误或商品不存在"
// @Router /api/recipes [post]
func (r *RecipeController) Create(c *gin.Context) {
	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := r.recipeService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, r.log, "RecipeController.Create", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update 编辑菜谱，product_ids 整体替换
// @Summary 编辑菜谱
// @Tags Recipe (菜谱)
// @Accept json
// @Produce json
// @Param id path int true "菜谱 ID"
// @Param request body dto.UpdateRecipeReq true "菜谱及配料"
// @Success 200 {object} map[string]string "success"
// @Failure 404 {object} map[string]string "菜谱不存在"
// @Router /api/recipes/{id} [put]
func (r *RecipeController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	found, err := r.recipeService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, r.log, "RecipeController.Update", err)
		return
	}
	if !found {
		notFound(c, "recipe")
		return
	}
	success(c)
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Tags Recipe (菜谱)
// @Param id path int true "菜谱 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/recipes/{id} [delete]
func (r *RecipeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.recipeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, r.log, "RecipeController.Delete", err)
		return
	}
	success(c)
}
