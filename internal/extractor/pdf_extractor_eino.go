package extractor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/logger"
)

// EinoPDFExtractor 使用 Eino PDF Parser 按页提取文本
// 引擎需要页边界信号，所以这里固定按页分割
type EinoPDFExtractor struct {
	parser  *pdf.PDFParser
	timeout time.Duration
	log     zerolog.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFExtractor)

// WithTimeout 配置单次提取的超时
func WithTimeout(d time.Duration) EinoPDFOption {
	return func(e *EinoPDFExtractor) {
		e.timeout = d
	}
}

// WithLogger 配置自定义日志记录器
func WithLogger(log zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFExtractor) {
		e.log = log
	}
}

// NewEinoPDFExtractor 初始化PDF文本提取器
func NewEinoPDFExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true, // 每页一个文档，页边界对分段器是信号
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFExtractor{
		parser:  p,
		timeout: 30 * time.Second,
		log:     logger.Logger.With().Str("component", "pdf_extractor").Logger(),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractPages 实现 TextExtractor，从PDF数据流按页提取文本
func (e *EinoPDFExtractor) ExtractPages(ctx context.Context, reader io.Reader, uri string) ([]string, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader, einoParser.WithURI(uri))
	if err != nil {
		e.log.Error().Err(err).Str("uri", uri).Dur("elapsed", time.Since(start)).Msg("PDF文本提取失败")
		return nil, fmt.Errorf("PDF解析失败 %s: %w", uri, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("PDF解析无结果 %s", uri)
	}

	pages := make([]string, 0, len(docs))
	total := 0
	for _, doc := range docs {
		pages = append(pages, doc.Content)
		total += len(doc.Content)
	}

	e.log.Debug().
		Str("uri", uri).
		Int("pages", len(pages)).
		Int("chars", total).
		Dur("elapsed", time.Since(start)).
		Msg("PDF文本提取完成")
	return pages, nil
}

// ExtractPagesFromFile 从PDF文件路径按页提取文本
func (e *EinoPDFExtractor) ExtractPagesFromFile(ctx context.Context, filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("打开PDF文件失败 %s: %w", filePath, err)
	}
	defer file.Close()
	return e.ExtractPages(ctx, file, filePath)
}
