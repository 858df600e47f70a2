package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
)

// ErrNotFound 键不存在，封装底层的 redis.Nil
var ErrNotFound = redis.Nil

// Redis 键值存储：文件MD5去重集合与解析结果缓存
type Redis struct {
	client       *redis.Client
	md5ExpireDur time.Duration
}

// NewRedis 创建Redis客户端并注册链路追踪钩子
func NewRedis(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	opts := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}
	if cfg.DialTimeoutSeconds > 0 {
		opts.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		opts.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		opts.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(opts)
	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("注册Redis追踪钩子失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	return &Redis{
		client:       client,
		md5ExpireDur: time.Duration(cfg.MD5RecordExpireDays) * 24 * time.Hour,
	}, nil
}

// SeenFileMD5 检查文件MD5是否出现过，没出现过则记录
// 返回true表示重复上传
func (r *Redis) SeenFileMD5(ctx context.Context, fileMD5 string) (bool, error) {
	added, err := r.client.SAdd(ctx, constants.RawFileMD5SetKey, fileMD5).Result()
	if err != nil {
		return false, fmt.Errorf("记录文件MD5失败: %w", err)
	}
	// 集合整体滚动过期，旧记录随之清理
	if r.md5ExpireDur > 0 {
		if err := r.client.Expire(ctx, constants.RawFileMD5SetKey, r.md5ExpireDur).Err(); err != nil {
			return false, fmt.Errorf("设置MD5集合过期失败: %w", err)
		}
	}
	return added == 0, nil
}

// CacheRecord 缓存解析结果JSON
func (r *Redis) CacheRecord(ctx context.Context, submissionUUID string, data []byte) error {
	key := constants.RecordCachePrefix + submissionUUID
	if err := r.client.Set(ctx, key, data, constants.RecordCacheDuration).Err(); err != nil {
		return fmt.Errorf("缓存解析结果失败: %w", err)
	}
	return nil
}

// GetCachedRecord 读取缓存的解析结果，未命中返回 ErrNotFound
func (r *Redis) GetCachedRecord(ctx context.Context, submissionUUID string) ([]byte, error) {
	key := constants.RecordCachePrefix + submissionUUID
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取缓存失败: %w", err)
	}
	return data, nil
}

// Close 关闭客户端
func (r *Redis) Close() error {
	return r.client.Close()
}
