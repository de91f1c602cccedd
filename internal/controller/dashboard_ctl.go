package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/middleware"
	"family_shopping/internal/service"
)

type DashboardController struct {
	dashboardService *service.DashboardService
	log              *zap.Logger
}

func NewDashboardController(dashboardService *service.DashboardService, log *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, log: log.Named("dashboard")}
}

// Get 首页数据
// @Summary 首页数据
// @Tags Dashboard (首页)
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Router /api/dashboard [get]
func (d *DashboardController) Get(c *gin.Context) {
	resp, err := d.dashboardService.Load(c.Request.Context())
	if err != nil {
		respondError(c, d.log, "DashboardController.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Page 服务端渲染首页
func (d *DashboardController) Page(c *gin.Context) {
	resp, err := d.dashboardService.Load(c.Request.Context())
	if err != nil {
		d.log.Error("[API] request failed",
			zap.String("op", "DashboardController.Page"),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, msgInternal)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Dashboard": resp,
		"Member":    middleware.GetMember(c),
	})
}
