package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults 测试默认配置
// 测试目录下没有配置文件，Load只依赖默认值
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "bookshelf", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

// TestLoad_EnvOverride 测试环境变量覆盖
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKSHELF_SERVER_PORT", "9090")
	t.Setenv("BOOKSHELF_DATABASE_PASSWORD", "secret")
	t.Setenv("BOOKSHELF_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "error", cfg.Log.Level)
}

// TestLoad_InvalidPort 测试端口校验
func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("BOOKSHELF_SERVER_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

// TestDatabaseConfig_DSN 测试DSN拼装
func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:      "localhost",
		Port:      3306,
		User:      "root",
		Password:  "secret",
		DBName:    "bookshelf",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Local",
	}

	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/bookshelf?charset=utf8mb4&parseTime=true&loc=Local",
		d.DSN())
}

// TestDatabaseConfig_DSN_LocEscaped 测试时区参数的URL编码
func TestDatabaseConfig_DSN_LocEscaped(t *testing.T) {
	d := DatabaseConfig{
		Host:      "db",
		Port:      3306,
		User:      "app",
		Password:  "p",
		DBName:    "bookshelf",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Asia/Shanghai",
	}

	assert.Contains(t, d.DSN(), "loc=Asia%2FShanghai")
}
