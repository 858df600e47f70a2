package engine

import (
	"strings"

	"resume-parser-go/internal/types"
)

// CertificationExtractor 从证书章节提取条目
// 证书通常一行一条，预期的是单个签发日期而非范围；
// 遇到范围时取结束边界作为签发日期
type CertificationExtractor struct {
	dates *DateResolver
}

// NewCertificationExtractor 创建证书提取器
func NewCertificationExtractor(dates *DateResolver) *CertificationExtractor {
	return &CertificationExtractor{dates: dates}
}

// Extract 提取一个证书章节的全部条目，每个非空行算一条
func (x *CertificationExtractor) Extract(section types.Section) []types.CertificationEntry {
	entries := []types.CertificationEntry{}
	for _, line := range section.Body() {
		text := stripBullet(line.Text)
		if text == "" {
			continue
		}
		entries = append(entries, x.extractEntry(text))
	}
	return entries
}

func (x *CertificationExtractor) extractEntry(text string) types.CertificationEntry {
	entry := types.CertificationEntry{Issued: types.UnknownBound()}

	var dateExpr string
	if rng, matched, ok := x.dates.FindRange(text); ok {
		entry.Issued = rng.End
		dateExpr = matched
	} else if bound, matched, ok := x.dates.FindSingle(text); ok {
		entry.Issued = bound
		dateExpr = matched
	}

	remainder := stripDateExpr(text, dateExpr)
	parts := splitHeader(remainder)
	if len(parts) == 0 {
		// 整行只有日期，名称退化为原始文本
		entry.Name = strings.TrimSpace(text)
		return entry
	}

	// 逗号也能分隔名称和签发方
	if len(parts) == 1 {
		if cparts := strings.SplitN(parts[0], ",", 2); len(cparts) == 2 {
			parts = []string{strings.TrimSpace(cparts[0]), strings.TrimSpace(cparts[1])}
		}
	}

	entry.Name = parts[0]
	if len(parts) > 1 && parts[1] != "" {
		issuer := parts[1]
		entry.Issuer = &issuer
	}
	return entry
}
