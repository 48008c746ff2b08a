package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealth 测试健康检查接口
func TestHealth(t *testing.T) {
	RequireServer(t)

	status, resp := GetJSON(t, BaseURL+"/health")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, resp.Code)

	var health HealthData
	require.NoError(t, json.Unmarshal(resp.Data, &health))

	assert.Equal(t, "ok", health.Status)
	assert.GreaterOrEqual(t, health.UptimeSeconds, int64(0))
	assert.Equal(t, "up", health.Database)
	require.NotNil(t, health.Books, "数据库可达时应返回图书总数")
	assert.GreaterOrEqual(t, *health.Books, int64(0))

	t.Logf("✓ 服务运行%d秒，库存%d本", health.UptimeSeconds, *health.Books)
}
