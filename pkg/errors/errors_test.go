package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAppError_HTTPStatus 测试错误码到HTTP状态码的推导
func TestAppError_HTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"参数错误", ErrCodeInvalidParams, http.StatusBadRequest},
		{"图书不存在", ErrCodeBookNotFound, http.StatusNotFound},
		{"重复记录", ErrCodeDuplicateEntry, http.StatusConflict},
		{"内部错误", ErrCodeInternal, http.StatusInternalServerError},
		{"数据库错误", ErrCodeDatabaseError, http.StatusInternalServerError},
		{"非法的小错误码", 0, http.StatusInternalServerError},
		{"非法的成功段错误码", 20001, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.code, "x").HTTPStatus())
		})
	}
}

// TestAppError_Error 测试错误文本格式
func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[40401] 图书不存在", New(ErrCodeBookNotFound, "图书不存在").Error())

	wrapped := Wrap(errors.New("connection refused"), "数据库错误")
	assert.Equal(t, "[50000] 数据库错误: connection refused", wrapped.Error())
}

// TestWrap 测试底层错误的包装与解包
func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, "数据库错误")

	assert.Equal(t, ErrCodeInternal, appErr.Code)
	// 被包装的底层错误可以通过errors.Is探测
	assert.True(t, errors.Is(appErr, cause))
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	t.Run("直接的AppError原样返回", func(t *testing.T) {
		orig := New(ErrCodeBookNotFound, "图书不存在")
		assert.Same(t, orig, GetAppError(orig))
	})

	t.Run("fmt包装后的AppError依然可提取", func(t *testing.T) {
		orig := New(ErrCodeBookNotFound, "图书不存在")
		wrapped := fmt.Errorf("查询失败: %w", orig)
		assert.Same(t, orig, GetAppError(wrapped))
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.EqualError(t, got.Err, "boom")
	})
}

// TestIsAppError 测试类型判断
func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrInvalidID))
	assert.True(t, IsAppError(fmt.Errorf("wrap: %w", ErrInvalidID)))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.False(t, IsAppError(nil))
}
