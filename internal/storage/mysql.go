package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/tracing"
)

var mysqlTracer = otel.Tracer("resume-parser-go/storage/mysql")

// ErrSubmissionNotFound 指定的提交不存在
var ErrSubmissionNotFound = errors.New("简历提交记录不存在")

// MySQL 关系型存储，保存提交元数据与解析结果
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 创建MySQL连接并迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	if err := db.AutoMigrate(&models.ResumeSubmission{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	return &MySQL{db: db}, nil
}

// CreateSubmission 新建提交记录
func (m *MySQL) CreateSubmission(ctx context.Context, sub *models.ResumeSubmission) error {
	ctx, span := mysqlTracer.Start(ctx, "mysql.CreateSubmission")
	defer span.End()
	span.SetAttributes(
		semconv.DBSystemMySQL,
		attribute.String("submission.uuid", sub.SubmissionUUID),
	)

	if err := m.db.WithContext(ctx).Create(sub).Error; err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return fmt.Errorf("写入提交记录失败: %w", err)
	}
	return nil
}

// MarkParsed 记录解析成功：更新状态、联系方式快照和完整记录JSON
func (m *MySQL) MarkParsed(ctx context.Context, sub *models.ResumeSubmission) error {
	ctx, span := mysqlTracer.Start(ctx, "mysql.MarkParsed")
	defer span.End()
	span.SetAttributes(
		semconv.DBSystemMySQL,
		attribute.String("submission.uuid", sub.SubmissionUUID),
	)

	updates := map[string]interface{}{
		"status":            models.StatusParsed,
		"record_object_key": sub.RecordObjectKey,
		"candidate_name":    sub.CandidateName,
		"candidate_email":   sub.CandidateEmail,
		"candidate_phone":   sub.CandidatePhone,
		"record_json":       sub.RecordJSON,
		"parser_version":    sub.ParserVersion,
	}
	err := m.db.WithContext(ctx).
		Model(&models.ResumeSubmission{}).
		Where("submission_uuid = ?", sub.SubmissionUUID).
		Updates(updates).Error
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return fmt.Errorf("更新解析结果失败: %w", err)
	}
	return nil
}

// MarkFailed 记录解析失败及原因
func (m *MySQL) MarkFailed(ctx context.Context, submissionUUID, detail string) error {
	ctx, span := mysqlTracer.Start(ctx, "mysql.MarkFailed")
	defer span.End()

	err := m.db.WithContext(ctx).
		Model(&models.ResumeSubmission{}).
		Where("submission_uuid = ?", submissionUUID).
		Updates(map[string]interface{}{
			"status":       models.StatusFailed,
			"error_detail": detail,
		}).Error
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return fmt.Errorf("更新失败状态失败: %w", err)
	}
	return nil
}

// GetSubmission 按UUID查询提交记录
func (m *MySQL) GetSubmission(ctx context.Context, submissionUUID string) (*models.ResumeSubmission, error) {
	ctx, span := mysqlTracer.Start(ctx, "mysql.GetSubmission")
	defer span.End()
	span.SetAttributes(attribute.String("submission.uuid", submissionUUID))

	var sub models.ResumeSubmission
	err := m.db.WithContext(ctx).
		Where("submission_uuid = ?", submissionUUID).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return nil, fmt.Errorf("查询提交记录失败: %w", err)
	}
	return &sub, nil
}

// FindByMD5 按文件MD5查询已有提交，用于重复上传短路
func (m *MySQL) FindByMD5(ctx context.Context, fileMD5 string) (*models.ResumeSubmission, error) {
	ctx, span := mysqlTracer.Start(ctx, "mysql.FindByMD5")
	defer span.End()

	var sub models.ResumeSubmission
	err := m.db.WithContext(ctx).
		Where("file_md5 = ? AND status = ?", fileMD5, models.StatusParsed).
		Order("created_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeDB)
		return nil, fmt.Errorf("按MD5查询提交失败: %w", err)
	}
	return &sub, nil
}

// Close 关闭底层连接池
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
