package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试需要一个已启动的服务实例（和一个可用的MySQL）：
//
//	go run ./cmd/api
//	go test ./test/integration/...
//
// 服务不可达时测试自动跳过，不影响单元测试的执行

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8000"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedYear int       `json:"published_year"`
	Genre         string    `json:"genre"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	Items []BookData `json:"items"`
	Total int64      `json:"total"`
	Start *int       `json:"start"`
	Limit *int       `json:"limit"`
}

// HealthData 健康检查响应数据
type HealthData struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Database      string `json:"database"`
	Books         *int64 `json:"books"`
}

// RequireServer 检查服务是否可达，不可达时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL + "/health")
	if err != nil {
		t.Skipf("服务未启动，跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// DoJSON 发送JSON请求并解析统一响应（同时返回HTTP状态码）
func DoJSON(t *testing.T, method, url string, data interface{}) (int, *Response) {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return resp.StatusCode, &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) (int, *Response) {
	return DoJSON(t, http.MethodPost, url, data)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) (int, *Response) {
	return DoJSON(t, http.MethodGet, url, nil)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) (int, *Response) {
	return DoJSON(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) (int, *Response) {
	return DoJSON(t, http.MethodDelete, url, nil)
}

// GenerateTestTitle 生成唯一的测试书名
// 同名同作者会触发重复冲突，时间戳后缀保证重复运行不冲突
func GenerateTestTitle(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

// GenerateTestAuthor 生成唯一的测试作者名
// 作者名不允许包含数字，时间戳按位映射为字母保证唯一
func GenerateTestAuthor(prefix string) string {
	suffix := []rune(fmt.Sprintf("%d", time.Now().UnixNano()%1000000))
	for i, r := range suffix {
		suffix[i] = 'a' + (r - '0')
	}
	return prefix + string(suffix)
}

// CreateTestBook 创建测试图书并返回响应数据
func CreateTestBook(t *testing.T, title, author string, year int, genre string) *BookData {
	t.Helper()

	status, resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":          title,
		"author":         author,
		"published_year": year,
		"genre":          genre,
	})
	require.Equal(t, http.StatusCreated, status, "创建图书失败: %s", resp.Message)
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")

	return &data
}

// DeleteTestBook 清理测试图书（忽略结果）
func DeleteTestBook(t *testing.T, id uint) {
	t.Helper()
	DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, id))
}
