package extractor

import (
	"context"
	"io"
)

// TextExtractor 文本获取接口
// 解析引擎只接收保留行与页边界的纯文本，不关心文本是怎么来的；
// 这里是引擎之外的外部协作方
type TextExtractor interface {
	// ExtractPages 从数据流提取按页组织的纯文本
	ExtractPages(ctx context.Context, reader io.Reader, uri string) ([]string, error)
}
