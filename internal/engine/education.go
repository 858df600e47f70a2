package engine

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	// 学位关键词提示：表头两段都存在时，判断哪一段是学位
	degreeHintRE = regexp.MustCompile(`(?i)\b(b\.?\s?s\b|b\.?\s?e\b|b\.?\s?a\b|m\.?\s?s\b|m\.?\s?a\b|m\.?\s?eng|m\.?\s?tech|b\.?\s?tech|ph\.?\s?d|bachelor|master|doctor|associate|diploma)`)

	gpaRE = regexp.MustCompile(`(?i)\bGPA\s*[:\-]?\s*([0-5]\.\d{1,2})`)
)

// EducationExtractor 从教育经历章节提取结构化条目
type EducationExtractor struct {
	dates *DateResolver
}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor(dates *DateResolver) *EducationExtractor {
	return &EducationExtractor{dates: dates}
}

// Extract 提取一个教育经历章节的全部条目
func (x *EducationExtractor) Extract(section types.Section) []types.EducationEntry {
	blocks := splitEntryBlocks(section.Body(), x.dates.HasRange)

	entries := make([]types.EducationEntry, 0, len(blocks))
	for _, block := range blocks {
		if entry, ok := x.extractEntry(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (x *EducationExtractor) extractEntry(block []types.Line) (types.EducationEntry, bool) {
	entry := types.EducationEntry{Dates: types.UnknownRange()}

	var dateExpr string
	dateLineIdx := -1
	for i, line := range block {
		if rng, matched, ok := x.dates.FindRange(line.Text); ok {
			entry.Dates = rng
			dateExpr = matched
			dateLineIdx = i
			break
		}
	}

	headerIdx := -1
	for i, line := range block {
		if !isBullet(line.Text) {
			headerIdx = i
			break
		}
	}
	if headerIdx >= 0 {
		header := block[headerIdx].Text
		if headerIdx == dateLineIdx {
			header = stripDateExpr(header, dateExpr)
		}
		entry.Institution, entry.Degree = splitInstitutionDegree(header)
	}

	for _, line := range block {
		if m := gpaRE.FindStringSubmatch(line.Text); m != nil {
			gpa := m[1]
			entry.GPA = &gpa
			break
		}
	}

	if entry.Institution == "" && entry.Degree == "" {
		return entry, false
	}
	return entry, true
}

// splitInstitutionDegree 拆分学校与学位
// 两段时按学位关键词决定方向；单段时尝试逗号拆分；学位缺失时留空
func splitInstitutionDegree(header string) (institution, degree string) {
	parts := splitHeader(header)
	switch {
	case len(parts) >= 2:
		left, right := parts[0], parts[1]
		if degreeHintRE.MatchString(left) && !degreeHintRE.MatchString(right) {
			return right, left
		}
		return left, right
	case len(parts) == 1:
		cparts := strings.Split(parts[0], ",")
		if len(cparts) >= 2 {
			institution = strings.TrimSpace(cparts[0])
			degree = strings.TrimSpace(strings.Join(cparts[1:], ","))
			if degreeHintRE.MatchString(institution) && !degreeHintRE.MatchString(degree) {
				return degree, institution
			}
			return institution, degree
		}
		return parts[0], ""
	default:
		return "", ""
	}
}
