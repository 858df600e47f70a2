package constants

import "time"

const (
	// DefaultParserVer 当前解析引擎版本，随规则演进递增
	DefaultParserVer = "1.0"

	// RawFileMD5SetKey 已见原始文件MD5的Redis Set键
	RawFileMD5SetKey = "resumes:file_md5s"
	// RecordCachePrefix 解析结果缓存的键前缀
	RecordCachePrefix = "resume_record:"
	// RecordCacheDuration 解析结果缓存时长
	RecordCacheDuration = 24 * time.Hour
)
