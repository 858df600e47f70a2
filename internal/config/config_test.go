package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "resume-parser", cfg.Tracing.ServiceName)
	assert.Equal(t, 30, cfg.ExtractTimeoutSeconds)
	assert.Equal(t, "resume-originals", cfg.MinIO.OriginalsBucket)
	assert.Equal(t, "resume-records", cfg.MinIO.RecordsBucket)
	assert.Equal(t, "US", cfg.Engine.DefaultPhoneRegion)
}

func TestLoadConfigFromFileOnly(t *testing.T) {
	content := `
server:
  address: ":9090"
api:
  key: "secret-key"
engine:
  default_phone_region: "CN"
  max_heading_runes: 32
  custom_section_keywords:
    SKILLS: ["toolbox"]
logger:
  level: debug
mysql:
  host: "db.local"
  port: 3306
redis:
  address: "cache.local:6379"
extract_timeout_seconds: 60
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFromFileOnly(path)
	require.NoError(t, err, "加载合法配置不应返回错误")

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "secret-key", cfg.API.Key)
	assert.Equal(t, "CN", cfg.Engine.DefaultPhoneRegion)
	assert.Equal(t, 32, cfg.Engine.MaxHeadingRunes)
	assert.Equal(t, []string{"toolbox"}, cfg.Engine.CustomSectionKeywords[types.SectionSkills])
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "db.local", cfg.MySQL.Host)
	assert.Equal(t, "cache.local:6379", cfg.Redis.Address)
	assert.Equal(t, 60, cfg.ExtractTimeoutSeconds)

	// 未显式给出的字段回填默认值
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 10, cfg.MySQL.MaxIdleConns)
	assert.Equal(t, 30, cfg.Redis.MD5RecordExpireDays)
}

func TestLoadConfigFromFileOnlyErrors(t *testing.T) {
	_, err := LoadConfigFromFileOnly("")
	assert.Error(t, err, "空路径应报错")

	_, err = LoadConfigFromFileOnly(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "不存在的文件应报错")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))
	_, err = LoadConfigFromFileOnly(path)
	assert.Error(t, err, "非法YAML应报错")
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	// 切到空目录，保证路径查找不命中任何配置文件
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err, "找不到配置文件时退回默认配置而非报错")
	assert.Equal(t, ":8080", cfg.Server.Address)
}
