package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PlainTextExtractor 纯文本直通提取器
// 换页符（\f）视为页边界；输入不是有效UTF-8时报不可恢复输入错误
type PlainTextExtractor struct{}

// NewPlainTextExtractor 创建纯文本提取器
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractPages 实现 TextExtractor
func (e *PlainTextExtractor) ExtractPages(ctx context.Context, reader io.Reader, uri string) ([]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取文本失败 %s: %w", uri, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("输入不是有效的UTF-8文本: %s", uri)
	}
	return strings.Split(string(data), "\f"), nil
}
