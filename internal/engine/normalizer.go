package engine

import (
	"strings"
	"unicode"

	"resume-parser-go/internal/types"
)

// Normalizer 把原始提取文本清洗成规范的行序列
// 对输入不做任何假设：OCR噪声、断词连字符、混乱空白都要容忍
// 永不失败，空输入产出空的 RawDocument
type Normalizer struct{}

// NewNormalizer 创建文本归一化器
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeText 归一化单个文本流，换页符（\f）视为页边界
func (n *Normalizer) NormalizeText(text string) types.RawDocument {
	return n.NormalizePages(strings.Split(text, "\f"))
}

// NormalizePages 归一化按页给出的文本，行上保留来源页码
func (n *Normalizer) NormalizePages(pages []string) types.RawDocument {
	var lines []types.Line
	for pageIdx, page := range pages {
		// 统一换行符
		page = strings.ReplaceAll(page, "\r\n", "\n")
		page = strings.ReplaceAll(page, "\r", "\n")

		for _, raw := range strings.Split(page, "\n") {
			lines = append(lines, types.Line{
				Text: cleanLine(raw),
				Page: pageIdx,
			})
		}
	}

	lines = dehyphenate(lines)
	lines = collapseBlankRuns(lines)
	lines = trimBoundaryBlanks(lines)

	return types.RawDocument{Lines: lines}
}

// cleanLine 去掉不可打印字符，行内空白压缩为单个空格
func cleanLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
		case unicode.IsControl(r) || !unicode.IsPrint(r):
			// OCR伪字符直接丢弃
		default:
			b.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}

// dehyphenate 合并被换行折断的单词：行尾连字符且下一行以小写字母开头时拼接
func dehyphenate(lines []types.Line) []types.Line {
	out := make([]types.Line, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		for strings.HasSuffix(line.Text, "-") && len(line.Text) > 1 && i+1 < len(lines) {
			next := lines[i+1].Text
			if next == "" || !startsWithLower(next) {
				break
			}
			line.Text = strings.TrimSuffix(line.Text, "-") + next
			i++
		}
		out = append(out, line)
	}
	return out
}

func startsWithLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

// collapseBlankRuns 连续空行压缩为单个空行，保留其作为章节边界信号的作用
func collapseBlankRuns(lines []types.Line) []types.Line {
	out := make([]types.Line, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := line.Text == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return out
}

// trimBoundaryBlanks 去掉文档首尾的空行
func trimBoundaryBlanks(lines []types.Line) []types.Line {
	start := 0
	for start < len(lines) && lines[start].Text == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1].Text == "" {
		end--
	}
	return lines[start:end]
}
