package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// TestHealth 测试健康检查接口
func TestHealth(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)

	var health struct {
		Status        string `json:"status"`
		UptimeSeconds int64  `json:"uptime_seconds"`
		Database      string `json:"database"`
		Books         *int64 `json:"books"`
	}
	decodeData(t, resp, &health)

	assert.Equal(t, "ok", health.Status)
	assert.GreaterOrEqual(t, health.UptimeSeconds, int64(0))
	assert.Equal(t, "up", health.Database)
	// 空库也要返回计数，且为0
	require.NotNil(t, health.Books)
	assert.Equal(t, int64(0), *health.Books)
}

// TestHealth_WithBooks 测试非空库的计数
func TestHealth_WithBooks(t *testing.T) {
	r := newTestRouter()
	createBook(t, r, "Dune", "Frank Herbert", 1965, "fiction")
	createBook(t, r, "Cosmos", "Carl Sagan", 1980, "science")

	_, resp := doJSON(t, r, http.MethodGet, "/health", nil)

	var health struct {
		Database string `json:"database"`
		Books    *int64 `json:"books"`
	}
	decodeData(t, resp, &health)

	assert.Equal(t, "up", health.Database)
	require.NotNil(t, health.Books)
	assert.Equal(t, int64(2), *health.Books)
}

// brokenService 计数永远失败，模拟数据库不可达
type brokenService struct {
	book.Service
}

func (s *brokenService) CountBooks(ctx context.Context) (int64, error) {
	return 0, apperrors.ErrDatabaseError
}

// TestHealth_DatabaseDown 测试数据库不可达时仍返回200
func TestHealth_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &brokenService{Service: book.NewService(memory.NewBookRepository())}
	r := gin.New()
	r.GET("/health", NewHealthHandler(svc).Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "数据库故障不改变健康检查的HTTP状态码")

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var health struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Books    *int64 `json:"books"`
	}
	decodeData(t, resp, &health)

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "down", health.Database)
	assert.Nil(t, health.Books, "数据库不可达时不返回计数")
}
