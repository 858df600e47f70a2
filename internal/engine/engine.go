package engine

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"resume-parser-go/internal/types"
)

// ErrInvalidText 输入不是可解码的UTF-8文本
// 这是引擎唯一的不可恢复输入错误，只中止当前文档的解析
var ErrInvalidText = errors.New("输入不是有效的UTF-8文本")

// Engine 简历解析引擎
// 无状态、可重入：每次调用只操作自己的输入并产出自己的记录，
// 多个文档可以在独立的goroutine中零协调地并发解析
type Engine struct {
	cfg        Config
	normalizer *Normalizer
	detector   HeadingDetector
	segmenter  *Segmenter
	dates      *DateResolver

	contact        *ContactExtractor
	experience     *ExperienceExtractor
	education      *EducationExtractor
	skills         *SkillsExtractor
	certifications *CertificationExtractor
	projects       *ProjectExtractor
}

// Option 引擎构造选项
type Option func(*Engine)

// WithHeadingDetector 替换默认的标题检测器
// 允许接入基于版面或模型的检测实现
func WithHeadingDetector(d HeadingDetector) Option {
	return func(e *Engine) {
		e.detector = d
	}
}

// New 按配置构建解析引擎
func New(cfg Config, opts ...Option) (*Engine, error) {
	cfg = cfg.withDefaults()

	dates, err := NewDateResolver(cfg)
	if err != nil {
		return nil, fmt.Errorf("初始化日期解析器失败: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		normalizer: NewNormalizer(),
		dates:      dates,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.detector == nil {
		detector, err := NewKeywordHeadingDetector(cfg)
		if err != nil {
			return nil, fmt.Errorf("初始化标题检测器失败: %w", err)
		}
		e.detector = detector
	}

	e.segmenter = NewSegmenter(e.detector)
	e.contact = NewContactExtractor(cfg, e.detector)
	e.experience = NewExperienceExtractor(dates)
	e.education = NewEducationExtractor(dates)
	e.skills = NewSkillsExtractor()
	e.certifications = NewCertificationExtractor(dates)
	e.projects = NewProjectExtractor(dates)

	return e, nil
}

// ParseText 归一化并解析一个文本流，换页符视为页边界
// 输入无法按UTF-8解码时返回 ErrInvalidText
func (e *Engine) ParseText(ctx context.Context, text string) (*types.ResumeRecord, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	return e.Parse(ctx, e.normalizer.NormalizeText(text)), nil
}

// ParsePages 归一化并解析按页给出的文本
func (e *Engine) ParsePages(ctx context.Context, pages []string) (*types.ResumeRecord, error) {
	for _, page := range pages {
		if !utf8.ValidString(page) {
			return nil, ErrInvalidText
		}
	}
	return e.Parse(ctx, e.normalizer.NormalizePages(pages)), nil
}

// Parse 解析一个归一化文档，这是引擎的纯函数边界
// 解析失误是局部且非致命的：格式再怪的简历也产出尽力而为的部分记录
func (e *Engine) Parse(ctx context.Context, doc types.RawDocument) *types.ResumeRecord {
	sections := e.segmenter.Segment(doc)
	return e.assemble(doc, sections)
}

// Normalize 暴露归一化步骤，供需要检查中间行序列的调用方使用
func (e *Engine) Normalize(text string) types.RawDocument {
	return e.normalizer.NormalizeText(text)
}

// Segment 暴露分段步骤
func (e *Engine) Segment(doc types.RawDocument) []types.Section {
	return e.segmenter.Segment(doc)
}
