package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadResumeFile 流式上传原始简历文件，边传边计算MD5
	// 返回对象路径和文件MD5
	UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, string, error)

	// UploadRecordJSON 上传解析出的记录JSON
	UploadRecordJSON(ctx context.Context, submissionUUID string, data []byte) (string, error)

	// GetResumeFile 下载原始简历文件
	GetResumeFile(ctx context.Context, objectKey string) ([]byte, error)

	// GetRecordJSON 下载解析记录JSON
	GetRecordJSON(ctx context.Context, objectKey string) ([]byte, error)
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client          *minio.Client
	cfg             *config.MinIOConfig
	originalsBucket string
	recordsBucket   string
	log             zerolog.Logger
}

// NewMinIO 创建MinIO客户端并确保存储桶就绪
func NewMinIO(ctx context.Context, cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	m := &MinIO{
		client:          client,
		cfg:             cfg,
		originalsBucket: cfg.OriginalsBucket,
		recordsBucket:   cfg.RecordsBucket,
		log:             logger.Logger.With().Str("component", "minio").Logger(),
	}

	if err := m.ensureBucket(ctx, m.originalsBucket, cfg.OriginalFileExpireDays); err != nil {
		return nil, err
	}
	if err := m.ensureBucket(ctx, m.recordsBucket, cfg.RecordExpireDays); err != nil {
		return nil, err
	}

	return m, nil
}

// ensureBucket 确保存储桶存在，按配置设置对象过期规则
func (m *MinIO) ensureBucket(ctx context.Context, bucket string, expireDays int) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("检查存储桶失败 %s: %w", bucket, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.Location}); err != nil {
			return fmt.Errorf("创建存储桶失败 %s: %w", bucket, err)
		}
		m.log.Info().Str("bucket", bucket).Msg("存储桶已创建")
	}

	if expireDays > 0 {
		lc := lifecycle.NewConfiguration()
		lc.Rules = []lifecycle.Rule{
			{
				ID:         "expire-objects",
				Status:     "Enabled",
				Expiration: lifecycle.Expiration{Days: lifecycle.ExpirationDays(expireDays)},
			},
		}
		if err := m.client.SetBucketLifecycle(ctx, bucket, lc); err != nil {
			// 生命周期设置失败不致命，记录后继续
			m.log.Warn().Err(err).Str("bucket", bucket).Msg("设置存储桶生命周期失败")
		}
	}
	return nil
}

// UploadResumeFile 流式上传原始文件，返回对象路径和MD5
func (m *MinIO) UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, string, error) {
	objectKey := fmt.Sprintf("originals/%s%s", submissionUUID, normalizeExt(fileExt))

	hasher := md5.New()
	tee := io.TeeReader(reader, hasher)

	_, err := m.client.PutObject(ctx, m.originalsBucket, objectKey, tee, fileSize, minio.PutObjectOptions{
		ContentType: contentTypeForExt(fileExt),
	})
	if err != nil {
		return "", "", fmt.Errorf("上传原始文件失败 %s: %w", objectKey, err)
	}

	fileMD5 := hex.EncodeToString(hasher.Sum(nil))
	m.log.Debug().Str("object", objectKey).Str("md5", fileMD5).Int64("size", fileSize).Msg("原始文件已上传")
	return objectKey, fileMD5, nil
}

// UploadRecordJSON 上传解析记录
func (m *MinIO) UploadRecordJSON(ctx context.Context, submissionUUID string, data []byte) (string, error) {
	objectKey := fmt.Sprintf("records/%s.json", submissionUUID)

	_, err := m.client.PutObject(ctx, m.recordsBucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("上传解析记录失败 %s: %w", objectKey, err)
	}
	return objectKey, nil
}

// GetResumeFile 下载原始文件
func (m *MinIO) GetResumeFile(ctx context.Context, objectKey string) ([]byte, error) {
	return m.download(ctx, m.originalsBucket, objectKey)
}

// GetRecordJSON 下载解析记录
func (m *MinIO) GetRecordJSON(ctx context.Context, objectKey string) ([]byte, error) {
	return m.download(ctx, m.recordsBucket, objectKey)
}

func (m *MinIO) download(ctx context.Context, bucket, objectKey string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("下载对象失败 %s/%s: %w", bucket, objectKey, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("读取对象失败 %s/%s: %w", bucket, objectKey, err)
	}
	return data, nil
}

func normalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return "application/pdf"
	case "txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
