package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "family_shopping/docs"
	"family_shopping/internal/api/dto"
	"family_shopping/internal/controller"
	"family_shopping/internal/metrics"
	"family_shopping/internal/middleware"
	"family_shopping/web"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Store     *controller.StoreController
	Product   *controller.ProductController
	Recipe    *controller.RecipeController
	Shopping  *controller.ShoppingController
	Dashboard *controller.DashboardController
	Health    *controller.HealthController
}

// Options 中间件配置
type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics      // nil 不暴露 /metrics
	Auth    *middleware.JWTConfig // nil 不启用认证
}

// SetupRouter 创建 gin 引擎并注册所有路由
func SetupRouter(ctl *Controllers, opts Options) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestID())
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	// Recovery 放在最内层，panic 也会进访问日志和指标
	r.Use(middleware.Logger(opts.Logger), middleware.Recovery(opts.Logger))

	// 1. 运维与文档
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", ctl.Health.Healthz)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	auth := middleware.JWTAuth(opts.Auth)

	// 2. 首页
	r.GET("/", auth, ctl.Dashboard.Page)

	// 3. API 路由组
	api := r.Group("/api", auth)
	{
		api.GET("/dashboard", ctl.Dashboard.Get)

		// 门店
		stores := api.Group("/stores")
		{
			stores.GET("", ctl.Store.List)
			stores.POST("", ctl.Store.Create)
			stores.GET("/:id", ctl.Store.Get)
			stores.PUT("/:id", ctl.Store.Update)
			stores.DELETE("/:id", ctl.Store.Delete)
		}

		// 商品
		products := api.Group("/products")
		{
			// GET /api/products?q=
			products.GET("", ctl.Product.List)
			products.POST("", ctl.Product.Create)
			products.GET("/:id", ctl.Product.Get)
			products.PUT("/:id", ctl.Product.Update)
			products.DELETE("/:id", ctl.Product.Delete)
			products.GET("/:id/recipes", ctl.Product.Recipes)
		}

		// 菜谱
		recipes := api.Group("/recipes")
		{
			// GET /api/recipes?product_id=
			recipes.GET("", ctl.Recipe.List)
			recipes.POST("", ctl.Recipe.Create)
			recipes.GET("/:id", ctl.Recipe.Get)
			recipes.PUT("/:id", ctl.Recipe.Update)
			recipes.DELETE("/:id", ctl.Recipe.Delete)
		}

		// 购物清单
		shopping := api.Group("/shopping")
		{
			shopping.GET("/items", ctl.Shopping.ListActive)
			shopping.POST("/items", ctl.Shopping.AddItem)
			shopping.PUT("/items/:id/quantity", ctl.Shopping.SetQuantity)
			shopping.POST("/items/:id/increment", ctl.Shopping.Increment)
			shopping.POST("/items/:id/decrement", ctl.Shopping.Decrement)
			shopping.POST("/items/:id/purchase", ctl.Shopping.MarkPurchased)
			shopping.DELETE("/items/:id", ctl.Shopping.RemoveItem)

			shopping.DELETE("/purchased", ctl.Shopping.ClearPurchased)
			shopping.GET("/purchased/exists", ctl.Shopping.HasPurchased)
			shopping.GET("/availability", ctl.Shopping.Availability)
		}
	}

	return r, nil
}
