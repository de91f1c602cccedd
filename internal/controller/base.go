package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"family_shopping/internal/middleware"
	"family_shopping/internal/service"
)

const msgInternal = "something went wrong"

// parseID 解析路径参数 :id，非法时直接写 400
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError 已知业务错误映射成 4xx，其余统一 500，详细错误只进日志
func respondError(c *gin.Context, log *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("[API] request failed",
			zap.String("op", op),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
