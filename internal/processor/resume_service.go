package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/engine"
	"resume-parser-go/internal/extractor"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/tracing"
	"resume-parser-go/internal/types"
)

var serviceTracer = otel.Tracer("resume-parser-go/processor")

// ParseResult 一次处理的结果
type ParseResult struct {
	SubmissionUUID string              `json:"submission_uuid"`
	Duplicate      bool                `json:"duplicate"` // 按文件MD5命中过往提交
	Record         *types.ResumeRecord `json:"record"`
}

// ResumeService 简历处理编排：入库原始文件、获取文本、调引擎解析、落盘结果
// 每个请求同步处理完整流程；引擎本身无状态，多个请求可并发处理
type ResumeService struct {
	engine     *engine.Engine
	storage    *storage.Storage
	extractors map[string]extractor.TextExtractor
}

// NewResumeService 创建处理服务
// storage 可以为nil（纯解析模式，CLI用），此时跳过所有持久化步骤
func NewResumeService(eng *engine.Engine, store *storage.Storage, extractors map[string]extractor.TextExtractor) *ResumeService {
	return &ResumeService{
		engine:     eng,
		storage:    store,
		extractors: extractors,
	}
}

// ProcessUpload 处理一次简历上传
// 解析失误是非致命的（产出部分记录）；只有不可解码的输入会让该文档失败
func (s *ResumeService) ProcessUpload(ctx context.Context, reader io.Reader, fileSize int64, filename string) (*ParseResult, error) {
	ctx, span := serviceTracer.Start(ctx, "processor.ProcessUpload")
	defer span.End()

	submissionUUID := uuid.NewString()
	span.SetAttributes(
		attribute.String("submission.uuid", submissionUUID),
		attribute.String("file.name", filename),
		attribute.Int64("file.size", fileSize),
	)
	log := logger.Ctx(ctx).With().Str("submission_uuid", submissionUUID).Str("file", filename).Logger()

	ext := strings.ToLower(filepath.Ext(filename))
	ex, ok := s.extractors[ext]
	if !ok {
		return nil, &ProcessError{SubmissionUUID: submissionUUID, Op: "intake", BaseErr: ErrUnsupportedFile, Detail: ext}
	}

	// 文件内容先进内存：后面既要上传又要提取文本
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, NewStoreFileError(submissionUUID, err.Error())
	}
	if fileSize <= 0 {
		fileSize = int64(len(data))
	}

	var sub *models.ResumeSubmission
	var fileMD5 string

	if s.storage != nil && s.storage.MinIO != nil {
		objectKey, md5sum, err := s.storage.MinIO.UploadResumeFile(ctx, submissionUUID, ext, bytes.NewReader(data), fileSize)
		if err != nil {
			tracing.RecordError(span, err, tracing.ErrorTypeStorage)
			return nil, NewStoreFileError(submissionUUID, err.Error())
		}
		fileMD5 = md5sum

		// 重复上传短路：同一文件解析过就直接回放已有结果
		if dup, err := s.checkDuplicate(ctx, fileMD5); err != nil {
			log.Warn().Err(err).Msg("MD5去重检查失败，按非重复继续")
		} else if dup != nil {
			log.Info().Str("prior_uuid", dup.SubmissionUUID).Msg("命中重复文件，复用已有解析结果")
			return dup, nil
		}

		sub = &models.ResumeSubmission{
			SubmissionUUID:    submissionUUID,
			OriginalName:      filename,
			FileExt:           ext,
			FileSizeBytes:     fileSize,
			FileMD5:           fileMD5,
			OriginalObjectKey: objectKey,
			Status:            models.StatusUploaded,
		}
		if s.storage.MySQL != nil {
			if err := s.storage.MySQL.CreateSubmission(ctx, sub); err != nil {
				tracing.RecordError(span, err, tracing.ErrorTypeDB)
				return nil, NewDatabaseError(submissionUUID, err.Error())
			}
		}
	}

	// 文本获取（外部协作方）：引擎只认带页边界的纯文本
	pages, err := ex.ExtractPages(ctx, bytes.NewReader(data), filename)
	if err != nil {
		s.markFailed(ctx, submissionUUID, err)
		return nil, NewExtractError(submissionUUID, err.Error())
	}

	record, err := s.engine.ParsePages(ctx, pages)
	if err != nil {
		// 唯一的不可恢复输入错误：文本不可解码，只中止这一份文档
		s.markFailed(ctx, submissionUUID, err)
		return nil, NewParseError(submissionUUID, err.Error())
	}

	if err := s.persistRecord(ctx, sub, record); err != nil {
		return nil, err
	}

	log.Info().
		Int("experience", len(record.Experience)).
		Int("education", len(record.Education)).
		Int("skills", record.Skills.Len()).
		Msg("简历解析完成")

	return &ParseResult{SubmissionUUID: submissionUUID, Record: record}, nil
}

// checkDuplicate MD5命中时装配过往提交的结果
func (s *ResumeService) checkDuplicate(ctx context.Context, fileMD5 string) (*ParseResult, error) {
	if s.storage.Redis == nil || s.storage.MySQL == nil {
		return nil, nil
	}
	seen, err := s.storage.Redis.SeenFileMD5(ctx, fileMD5)
	if err != nil || !seen {
		return nil, err
	}
	prior, err := s.storage.MySQL.FindByMD5(ctx, fileMD5)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		// Redis见过但库里没有已解析的提交，当作非重复
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record types.ResumeRecord
	if err := record.UnmarshalFrom(prior.RecordJSON); err != nil {
		return nil, err
	}
	return &ParseResult{
		SubmissionUUID: prior.SubmissionUUID,
		Duplicate:      true,
		Record:         &record,
	}, nil
}

// persistRecord 落盘解析结果：对象存储、数据库行、缓存
func (s *ResumeService) persistRecord(ctx context.Context, sub *models.ResumeSubmission, record *types.ResumeRecord) error {
	if s.storage == nil || sub == nil {
		return nil
	}

	data, err := record.ToJSON()
	if err != nil {
		return NewStoreRecordError(sub.SubmissionUUID, err.Error())
	}

	if s.storage.MinIO != nil {
		key, err := s.storage.MinIO.UploadRecordJSON(ctx, sub.SubmissionUUID, data)
		if err != nil {
			return NewStoreRecordError(sub.SubmissionUUID, err.Error())
		}
		sub.RecordObjectKey = key
	}

	if s.storage.MySQL != nil {
		sub.RecordJSON = data
		sub.ParserVersion = constants.DefaultParserVer
		if record.Contact.Name != nil {
			sub.CandidateName = *record.Contact.Name
		}
		if record.Contact.Email != nil {
			sub.CandidateEmail = *record.Contact.Email
		}
		if record.Contact.Phone != nil {
			sub.CandidatePhone = *record.Contact.Phone
		}
		if err := s.storage.MySQL.MarkParsed(ctx, sub); err != nil {
			return NewDatabaseError(sub.SubmissionUUID, err.Error())
		}
	}

	if s.storage.Redis != nil {
		if err := s.storage.Redis.CacheRecord(ctx, sub.SubmissionUUID, data); err != nil {
			// 缓存失败不影响主流程
			logger.Ctx(ctx).Warn().Err(err).Str("submission_uuid", sub.SubmissionUUID).Msg("缓存解析结果失败")
		}
	}

	return nil
}

// markFailed 尽力把失败状态写回数据库
func (s *ResumeService) markFailed(ctx context.Context, submissionUUID string, cause error) {
	if s.storage == nil || s.storage.MySQL == nil {
		return
	}
	if err := s.storage.MySQL.MarkFailed(ctx, submissionUUID, cause.Error()); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("写回失败状态失败")
	}
}

// GetRecord 查询已解析的记录，优先走缓存
func (s *ResumeService) GetRecord(ctx context.Context, submissionUUID string) (*types.ResumeRecord, error) {
	if s.storage == nil {
		return nil, ErrRecordNotFound
	}

	if s.storage.Redis != nil {
		if data, err := s.storage.Redis.GetCachedRecord(ctx, submissionUUID); err == nil {
			var record types.ResumeRecord
			if err := record.UnmarshalFrom(data); err == nil {
				return &record, nil
			}
		}
	}

	if s.storage.MySQL == nil {
		return nil, ErrRecordNotFound
	}
	sub, err := s.storage.MySQL.GetSubmission(ctx, submissionUUID)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询提交记录失败: %w", err)
	}
	if sub.Status != models.StatusParsed || len(sub.RecordJSON) == 0 {
		return nil, ErrRecordNotFound
	}

	var record types.ResumeRecord
	if err := record.UnmarshalFrom(sub.RecordJSON); err != nil {
		return nil, fmt.Errorf("反序列化解析结果失败: %w", err)
	}
	return &record, nil
}
