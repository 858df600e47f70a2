package engine

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-parser-go/internal/types"
)

// HeadingDetector 章节标题检测能力接口
// 隔离成可插拔的判定器，便于替换为基于版面或模型的实现而不动分段器的控制流
type HeadingDetector interface {
	// DetectHeading 判断一行是否是章节标题，是则返回对应的章节类型
	DetectHeading(line string) (types.SectionKind, bool)
}

// headingPattern 单个章节类型的标题模式
type headingPattern struct {
	kind types.SectionKind
	re   *regexp.Regexp
}

// keywordHeadingDetector 默认实现：关键词整行匹配加排版启发式
// 模式按 sectionPriority 的固定顺序逐个尝试，第一个命中的类型胜出
type keywordHeadingDetector struct {
	maxRunes int
	patterns []headingPattern
}

// NewKeywordHeadingDetector 按配置构建默认的标题检测器
func NewKeywordHeadingDetector(cfg Config) (HeadingDetector, error) {
	cfg = cfg.withDefaults()
	keywords := cfg.sectionKeywords()

	detector := &keywordHeadingDetector{maxRunes: cfg.MaxHeadingRunes}
	for _, kind := range sectionPriority {
		words := keywords[kind]
		if len(words) == 0 {
			continue
		}
		alt := make([]string, 0, len(words))
		for _, w := range words {
			alt = append(alt, regexp.QuoteMeta(w))
		}
		// 整行匹配（可带尾部冒号），排除了句末标点的普通散文行
		pattern := `(?i)^(?:` + strings.Join(alt, "|") + `)\s*:?$`
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("编译章节标题模式失败 %s: %w", kind, err)
		}
		detector.patterns = append(detector.patterns, headingPattern{kind: kind, re: re})
	}
	return detector, nil
}

// DetectHeading 实现 HeadingDetector
func (d *keywordHeadingDetector) DetectHeading(line string) (types.SectionKind, bool) {
	if line == "" || utf8.RuneCountInString(line) > d.maxRunes {
		return "", false
	}
	for _, p := range d.patterns {
		if p.re.MatchString(line) {
			return p.kind, true
		}
	}
	return "", false
}

// Segmenter 把归一化行序列切分为带标签的连续章节块
type Segmenter struct {
	detector HeadingDetector
}

// NewSegmenter 创建分段器
func NewSegmenter(detector HeadingDetector) *Segmenter {
	return &Segmenter{detector: detector}
}

// Segment 分段
// 第一个已识别标题之前的行构成未分类章节；没有任何标题时整个文档就是
// 一个未分类章节，这是合法结果而非错误。每一行恰好落入一个章节，顺序不变。
func (s *Segmenter) Segment(doc types.RawDocument) []types.Section {
	var sections []types.Section

	current := types.Section{Kind: types.SectionUnclassified}
	for _, line := range doc.Lines {
		kind, ok := s.detector.DetectHeading(line.Text)
		if !ok {
			current.Lines = append(current.Lines, line)
			continue
		}
		if len(current.Lines) > 0 {
			sections = append(sections, current)
		}
		// 标题行归属它所开启的章节，保持全覆盖不变量
		current = types.Section{
			Kind:  kind,
			Title: line.Text,
			Lines: []types.Line{line},
		}
	}
	if len(current.Lines) > 0 {
		sections = append(sections, current)
	}

	return sections
}
