package engine

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// 角色关键词提示：表头两段都存在时，判断哪一段是职位
var roleHintRE = regexp.MustCompile(`(?i)\b(engineer|developer|manager|scientist|consultant|intern|analyst|lead|architect|designer|director|specialist)\b`)

// ExperienceExtractor 从工作经历章节提取结构化条目
type ExperienceExtractor struct {
	dates *DateResolver
}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor(dates *DateResolver) *ExperienceExtractor {
	return &ExperienceExtractor{dates: dates}
}

// Extract 提取一个工作经历章节的全部条目
func (x *ExperienceExtractor) Extract(section types.Section) []types.ExperienceEntry {
	blocks := splitEntryBlocks(section.Body(), x.dates.HasRange)

	entries := make([]types.ExperienceEntry, 0, len(blocks))
	for _, block := range blocks {
		if entry, ok := x.extractEntry(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// extractEntry 解析单个条目块
func (x *ExperienceExtractor) extractEntry(block []types.Line) (types.ExperienceEntry, bool) {
	entry := types.ExperienceEntry{
		Dates:   types.UnknownRange(),
		Bullets: []string{},
	}

	// 第一个含日期范围的行决定条目的时间段；找不到就保留 Unknown，
	// 缺失日期由下游消费者自行处置
	dateLineIdx := -1
	var dateExpr string
	for i, line := range block {
		if rng, matched, ok := x.dates.FindRange(line.Text); ok {
			entry.Dates = rng
			dateExpr = matched
			dateLineIdx = i
			break
		}
	}

	// 第一个非项目符号行是组织+角色表头
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
		entry.Organization, entry.Role = splitOrgRole(header)
	}

	// "City, Region" 形状的地点行（头三行内找）
	for i, line := range block {
		if i >= 3 {
			break
		}
		if i == headerIdx || i == dateLineIdx {
			continue
		}
		if locationRE.MatchString(line.Text) && !emailRE.MatchString(line.Text) {
			loc := strings.TrimSpace(line.Text)
			entry.Location = &loc
			break
		}
	}

	for _, line := range block {
		if isBullet(line.Text) {
			entry.Bullets = append(entry.Bullets, stripBullet(line.Text))
		}
	}
	// 没有任何项目符号的块：表头和日期之外的行按顺序当作要点
	if len(entry.Bullets) == 0 {
		for i, line := range block {
			if i == headerIdx || i == dateLineIdx {
				continue
			}
			if entry.Location != nil && line.Text == *entry.Location {
				continue
			}
			if rest := stripDateExpr(line.Text, dateExpr); rest != "" {
				entry.Bullets = append(entry.Bullets, rest)
			}
		}
	}

	if entry.Organization == "" && entry.Role == "" && len(entry.Bullets) == 0 {
		return entry, false
	}
	return entry, true
}

// splitOrgRole 拆分组织与角色
// 两段时按角色关键词决定方向；单段时尝试逗号拆分；都不行则两个字段同值
func splitOrgRole(header string) (org, role string) {
	parts := splitHeader(header)
	switch {
	case len(parts) >= 2:
		left, right := parts[0], parts[1]
		if roleHintRE.MatchString(left) && !roleHintRE.MatchString(right) {
			return right, left
		}
		return left, right
	case len(parts) == 1:
		cparts := strings.Split(parts[0], ",")
		if len(cparts) >= 2 {
			role = strings.TrimSpace(cparts[0])
			org = strings.TrimSpace(strings.Join(cparts[1:], ","))
			if roleHintRE.MatchString(role) {
				return org, role
			}
			return role, org
		}
		return parts[0], parts[0]
	default:
		return "", ""
	}
}
