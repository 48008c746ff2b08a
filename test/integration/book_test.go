package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书接口集成测试
//
// 测试场景覆盖：
// 1. 图书全生命周期（创建→查询→更新→删除）
// 2. 列表过滤与窗口查询
// 3. 重复创建冲突
// 4. 参数验证与错误状态码

// TestBookLifecycle 测试图书全生命周期
func TestBookLifecycle(t *testing.T) {
	RequireServer(t)

	title := GenerateTestTitle("集成测试图书")
	created := CreateTestBook(t, title, "测试作者甲", 1999, "fiction")
	defer DeleteTestBook(t, created.ID)

	t.Run("创建后字段完整", func(t *testing.T) {
		assert.NotZero(t, created.ID)
		assert.Equal(t, title, created.Title)
		assert.True(t, created.Available, "available缺省应为true")
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt), "创建时两个时间戳应相等")

		t.Logf("✓ 创建成功，图书ID: %d", created.ID)
	})

	t.Run("按ID查询返回相同内容", func(t *testing.T) {
		status, resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID))
		require.Equal(t, http.StatusOK, status)

		var got BookData
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.Author, got.Author)
		assert.Equal(t, created.Genre, got.Genre)
	})

	t.Run("部分更新只改提供的字段", func(t *testing.T) {
		status, resp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID),
			map[string]interface{}{"available": false})
		require.Equal(t, http.StatusOK, status, "更新失败: %s", resp.Message)

		var updated BookData
		require.NoError(t, json.Unmarshal(resp.Data, &updated))
		assert.False(t, updated.Available)
		assert.Equal(t, created.Title, updated.Title, "未提供的字段不变")
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "created_at不可变")
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updated_at应刷新")

		t.Logf("✓ 更新成功，updated_at: %s", updated.UpdatedAt)
	})

	t.Run("删除后查询返回404", func(t *testing.T) {
		status, resp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID))
		require.Equal(t, http.StatusOK, status, "删除失败: %s", resp.Message)

		status, _ = GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID))
		assert.Equal(t, http.StatusNotFound, status)

		// 重复删除同样返回404
		status, _ = DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, created.ID))
		assert.Equal(t, http.StatusNotFound, status)

		t.Logf("✓ 删除幂等性验证通过")
	})
}

// TestBookCreate_Validation 测试创建参数验证
func TestBookCreate_Validation(t *testing.T) {
	RequireServer(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"非法类别", map[string]interface{}{
			"title": GenerateTestTitle("校验"), "author": "测试作者", "published_year": 1999, "genre": "mystery"}},
		{"年份过早", map[string]interface{}{
			"title": GenerateTestTitle("校验"), "author": "测试作者", "published_year": 1449, "genre": "history"}},
		{"作者过短", map[string]interface{}{
			"title": GenerateTestTitle("校验"), "author": "ab", "published_year": 1999, "genre": "fiction"}},
		{"缺少必填字段", map[string]interface{}{
			"title": GenerateTestTitle("校验")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := PostJSON(t, BaseURL+"/books", tc.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEqual(t, 0, resp.Code)
		})
	}
}

// TestBookCreate_Duplicate 测试重复创建返回409
func TestBookCreate_Duplicate(t *testing.T) {
	RequireServer(t)

	title := GenerateTestTitle("重复测试")
	created := CreateTestBook(t, title, "测试作者乙", 1999, "fiction")
	defer DeleteTestBook(t, created.ID)

	status, resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":          title,
		"author":         "测试作者乙",
		"published_year": 1999,
		"genre":          "fiction",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.NotEqual(t, 0, resp.Code)

	t.Logf("✓ 重复创建正确返回冲突: %s", resp.Message)
}

// TestBookList 测试列表过滤与窗口
func TestBookList(t *testing.T) {
	RequireServer(t)

	author := GenerateTestAuthor("窗口测试作者")
	var ids []uint
	for i := 0; i < 3; i++ {
		b := CreateTestBook(t, GenerateTestTitle("列表测试"), author, 1990+i, "science")
		ids = append(ids, b.ID)
	}
	defer func() {
		for _, id := range ids {
			DeleteTestBook(t, id)
		}
	}()

	t.Run("按作者过滤", func(t *testing.T) {
		status, resp := GetJSON(t, BaseURL+"/books?author="+author)
		require.Equal(t, http.StatusOK, status)

		var list BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Equal(t, int64(3), list.Total)
		for i := 1; i < len(list.Items); i++ {
			assert.Greater(t, list.Items[i].ID, list.Items[i-1].ID, "结果应按ID升序")
		}
	})

	t.Run("窗口查询不影响total", func(t *testing.T) {
		status, resp := GetJSON(t, fmt.Sprintf("%s/books?author=%s&start=1&limit=2", BaseURL, author))
		require.Equal(t, http.StatusOK, status)

		var list BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Equal(t, int64(3), list.Total)
		assert.Len(t, list.Items, 2)
	})

	t.Run("非法类别返回400", func(t *testing.T) {
		status, _ := GetJSON(t, BaseURL+"/books?genre=mystery")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

// TestBook_InvalidID 测试非法ID与不存在ID的状态码区分
func TestBook_InvalidID(t *testing.T) {
	RequireServer(t)

	status, _ := GetJSON(t, BaseURL+"/books/abc")
	assert.Equal(t, http.StatusBadRequest, status, "非法ID格式应返回400")

	status, _ = GetJSON(t, BaseURL+"/books/999999999")
	assert.Equal(t, http.StatusNotFound, status, "不存在的ID应返回404")
}
