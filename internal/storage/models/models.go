package models

import (
	"time"

	"gorm.io/datatypes"
)

// 提交状态生命周期
const (
	// StatusUploaded 原始文件已入库，尚未解析
	StatusUploaded = "UPLOADED"
	// StatusParsed 解析成功，记录已生成
	StatusParsed = "PARSED"
	// StatusFailed 解析失败（不可恢复输入错误）
	StatusFailed = "FAILED"
)

// ResumeSubmission 简历提交主表
// 解析出的完整记录整体存为JSON列，联系方式快照单独建列便于检索
type ResumeSubmission struct {
	SubmissionUUID string `gorm:"type:char(36);primaryKey"`
	OriginalName   string `gorm:"type:varchar(255)"`
	FileExt        string `gorm:"type:varchar(16)"`
	FileSizeBytes  int64
	FileMD5        string `gorm:"type:char(32);index:idx_submissions_file_md5"`

	// 原始文件与解析结果在对象存储中的路径
	OriginalObjectKey string `gorm:"type:varchar(512)"`
	RecordObjectKey   string `gorm:"type:varchar(512)"`

	// 联系方式快照（来自解析结果）
	CandidateName  string `gorm:"type:varchar(255)"`
	CandidateEmail string `gorm:"type:varchar(255);index:idx_submissions_email"`
	CandidatePhone string `gorm:"type:varchar(50)"`

	// 完整的解析记录
	RecordJSON datatypes.JSON `gorm:"type:json"`

	Status        string `gorm:"type:varchar(50);default:'UPLOADED';index:idx_submissions_status"`
	ParserVersion string `gorm:"type:varchar(32)"`
	ErrorDetail   string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

// TableName 指定表名
func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}
