package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// HealthHandler 健康检查HTTP处理器
// 设计说明:
// 1. 数据库探测通过一次图书计数完成（单次往返，顺带给出库存规模）
// 2. 数据库不可达不算请求失败：HTTP仍返回200，状态体现在database字段
type HealthHandler struct {
	bookService book.Service
	startTime   time.Time
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(bookService book.Service) *HealthHandler {
	return &HealthHandler{
		bookService: bookService,
		startTime:   time.Now(),
	}
}

// Health 健康检查
// @Summary      健康检查
// @Description  返回服务状态、运行时长与数据库连通性；数据库不可达时仍返回200
// @Tags         系统
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := &dto.HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	// 数据库连通性探测
	count, err := h.bookService.CountBooks(c.Request.Context())
	if err != nil {
		resp.Database = "down"
	} else {
		resp.Database = "up"
		resp.Books = &count // 零也是合法计数
	}

	response.Success(c, resp)
}
