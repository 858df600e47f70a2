package storage

import (
	"context"
	"fmt"
	"strings"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// Storage 存储管理器，聚合对象存储、关系库和键值存储
// 单个后端初始化失败只记警告，剩余后端照常可用；
// 全部失败才算初始化失败
type Storage struct {
	// 对象存储
	MinIO *MinIO

	// 关系型数据库
	MySQL *MySQL

	// 键值存储
	Redis *Redis
}

// NewStorage 创建存储管理器
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}
	var initErrors []string

	if cfg.MinIO.Endpoint != "" {
		m, err := NewMinIO(ctx, &cfg.MinIO)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MinIO失败")
			initErrors = append(initErrors, fmt.Sprintf("MinIO: %v", err))
		} else {
			storage.MinIO = m
			logger.Info().Msg("MinIO客户端初始化成功")
		}
	}

	if cfg.MySQL.Host != "" {
		m, err := NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败")
			initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
		} else {
			storage.MySQL = m
			logger.Info().Msg("MySQL连接初始化成功")
		}
	}

	if cfg.Redis.Address != "" {
		r, err := NewRedis(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化Redis失败")
			initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
		} else {
			storage.Redis = r
			logger.Info().Msg("Redis客户端初始化成功")
		}
	}

	configured := cfg.MinIO.Endpoint != "" || cfg.MySQL.Host != "" || cfg.Redis.Address != ""
	if configured && storage.MinIO == nil && storage.MySQL == nil && storage.Redis == nil {
		return nil, fmt.Errorf("所有存储后端初始化失败: %s", strings.Join(initErrors, "; "))
	}

	return storage, nil
}

// Close 依次关闭所有已初始化的后端
func (s *Storage) Close() {
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭MySQL失败")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭Redis失败")
		}
	}
}
