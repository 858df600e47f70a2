package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-parser-go/internal/engine"
	"resume-parser-go/internal/logger"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// API访问配置
	API APIConfig `yaml:"api"`

	// 解析引擎配置（关键词表、日期表、地区码等）
	Engine engine.Config `yaml:"engine"`

	// MinIO对象存储配置
	MinIO MinIOConfig `yaml:"minio"`

	// MySQL配置
	MySQL MySQLConfig `yaml:"mysql"`

	// Redis配置
	Redis RedisConfig `yaml:"redis"`

	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 链路追踪配置
	Tracing TracingConfig `yaml:"tracing"`

	// PDF提取超时（秒）
	ExtractTimeoutSeconds int `yaml:"extract_timeout_seconds"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080"
}

// APIConfig API访问配置
type APIConfig struct {
	Key string `yaml:"key"` // 非空时启用API Key鉴权
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`     // OTLP gRPC endpoint，空则禁用
	ServiceName string `yaml:"service_name"` // 上报的服务名
	Insecure    bool   `yaml:"insecure"`     // 是否不使用TLS
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Location        string `yaml:"location"` // 可选，存储桶区域
	// 原始简历与解析结果使用独立的存储桶
	OriginalsBucket string `yaml:"originalsBucket"`
	RecordsBucket   string `yaml:"recordsBucket"`
	// 对象生命周期（天），0 表示不过期
	OriginalFileExpireDays int `yaml:"original_file_expire_days"`
	RecordExpireDays       int `yaml:"record_expire_days"`
}

// MySQLConfig MySQL配置
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// 连接池设置
	MaxIdleConns           int `yaml:"max_idle_conns"`
	MaxOpenConns           int `yaml:"max_open_conns"`
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置（秒）
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// MD5去重记录过期时间（天）
	MD5RecordExpireDays int `yaml:"md5_record_expire_days"`
}

// LoadConfig 从文件加载配置
// 未指定路径时在常见位置查找，找不到则退回内置默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"../../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-parser", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "config.yaml"),
				filepath.Join(execDir, "..", "config.yaml"),
			)
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			return DefaultConfig(), nil
		}
	}

	return LoadConfigFromFileOnly(configPath)
}

// LoadConfigFromFileOnly 只从指定文件加载配置，不做路径查找
func LoadConfigFromFileOnly(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("必须提供配置文件路径")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	config := &Config{Engine: engine.DefaultConfig()}
	applyDefaults(config)
	return config
}

// applyDefaults 填充未设置的字段
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
	if config.Tracing.ServiceName == "" {
		config.Tracing.ServiceName = "resume-parser"
	}
	if config.ExtractTimeoutSeconds <= 0 {
		config.ExtractTimeoutSeconds = 30
	}
	if config.MinIO.OriginalsBucket == "" {
		config.MinIO.OriginalsBucket = "resume-originals"
	}
	if config.MinIO.RecordsBucket == "" {
		config.MinIO.RecordsBucket = "resume-records"
	}
	if config.MySQL.MaxIdleConns <= 0 {
		config.MySQL.MaxIdleConns = 10
	}
	if config.MySQL.MaxOpenConns <= 0 {
		config.MySQL.MaxOpenConns = 100
	}
	if config.MySQL.ConnMaxLifetimeMinutes <= 0 {
		config.MySQL.ConnMaxLifetimeMinutes = 60
	}
	if config.Redis.PoolSize <= 0 {
		config.Redis.PoolSize = 10
	}
	if config.Redis.MD5RecordExpireDays <= 0 {
		config.Redis.MD5RecordExpireDays = 30
	}
}
