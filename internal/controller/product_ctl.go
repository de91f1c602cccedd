package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/api/dto"
	"family_shopping/internal/service"
)

type ProductController struct {
	productService *service.ProductService
	recipeService  *service.RecipeService
	log            *zap.Logger
}

func NewProductController(productService *service.ProductService, recipeService *service.RecipeService, log *zap.Logger) *ProductController {
	return &ProductController{productService: productService, recipeService: recipeService, log: log.Named("product")}
}

// List 商品列表 / 搜索
// @Summary 商品列表
// @Description q 不为空时按名称或备注模糊搜索 (不区分大小写)
// @Tags Product (商品)
// @Produce json
// @Param q query string false "搜索词"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/products [get]
func (p *ProductController) List(c *gin.Context) {
	list, err := p.productService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, p.log, "ProductController.List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Get 商品详情
// @Summary 商品详情
// @Tags Product (商品)
// @Produce json
// @Param id path int true "商品 ID"
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/products/{id} [get]
func (p *ProductController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := p.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, p.log, "ProductController.Get", err)
		return
	}
	if product == nil {
		notFound(c, "product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Create 新建商品
// @Summary 新建商品
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Param request body dto.CreateProductReq true "商品及可购门店"
// @Success 200 {object} map[string]interface{} "id"
// @Failure 400 {object} map[string]string "参数错误或门店不存在"
// @Router /api/products [post]
func (p *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := p.productService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, p.log, "ProductController.Create", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update 编辑商品，store_ids 整体替换
// @Summary 编辑商品
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Param id path int true "商品 ID"
// @Param request body dto.UpdateProductReq true "商品及可购门店"
// @Success 200 {object} map[string]string "success"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/products/{id} [put]
func (p *ProductController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	found, err := p.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, p.log, "ProductController.Update", err)
		return
	}
	if !found {
		notFound(c, "product")
		return
	}
	success(c)
}

// Delete 删除商品 (级联删除门店关联、菜谱关联、购物清单条目)
// @Summary 删除商品
// @Tags Product (商品)
// @Param id path int true "商品 ID"
// @Success 200 {object} map[string]string "success"
// @Router /api/products/{id} [delete]
func (p *ProductController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := p.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, p.log, "ProductController.Delete", err)
		return
	}
	success(c)
}

// Recipes 使用该商品的菜谱
// @Summary 使用该商品的菜谱
// @Tags Product (商品)
// @Produce json
// @Param id path int true "商品 ID"
// @Success 200 {object} map[string]interface{} "data"
// @Router /api/products/{id}/recipes [get]
func (p *ProductController) Recipes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := p.recipeService.ListByProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, p.log, "ProductController.Recipes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
