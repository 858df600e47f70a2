package processor

import (
	"errors"
	"fmt"
)

// 基础错误类型
var (
	ErrStoreFileFailed   = errors.New("存储原始简历失败")
	ErrExtractTextFailed = errors.New("提取简历文本失败")
	ErrParseFailed       = errors.New("解析简历失败")
	ErrStoreRecordFailed = errors.New("存储解析结果失败")
	ErrDatabaseFailed    = errors.New("数据库操作失败")
	ErrUnsupportedFile   = errors.New("不支持的文件类型")
	ErrRecordNotFound    = errors.New("解析结果不存在")
)

// ProcessError 带提交UUID和操作名的详细错误
type ProcessError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *ProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *ProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 支持 errors.Is 按基础错误比较
func (e *ProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewStoreFileError(uuid, detail string) error {
	return &ProcessError{SubmissionUUID: uuid, Op: "store_file", BaseErr: ErrStoreFileFailed, Detail: detail}
}

func NewExtractError(uuid, detail string) error {
	return &ProcessError{SubmissionUUID: uuid, Op: "extract", BaseErr: ErrExtractTextFailed, Detail: detail}
}

func NewParseError(uuid, detail string) error {
	return &ProcessError{SubmissionUUID: uuid, Op: "parse", BaseErr: ErrParseFailed, Detail: detail}
}

func NewStoreRecordError(uuid, detail string) error {
	return &ProcessError{SubmissionUUID: uuid, Op: "store_record", BaseErr: ErrStoreRecordFailed, Detail: detail}
}

func NewDatabaseError(uuid, detail string) error {
	return &ProcessError{SubmissionUUID: uuid, Op: "database", BaseErr: ErrDatabaseFailed, Detail: detail}
}
