package engine

import (
	"strings"

	"resume-parser-go/internal/types"
)

// ProjectExtractor 从项目章节提取条目：空行分块，首行是标题，
// 块内第一个URL归入链接，其余行按顺序收进细节列表
type ProjectExtractor struct {
	dates *DateResolver
}

// NewProjectExtractor 创建项目提取器
func NewProjectExtractor(dates *DateResolver) *ProjectExtractor {
	return &ProjectExtractor{dates: dates}
}

// Extract 提取一个项目章节的全部条目
func (x *ProjectExtractor) Extract(section types.Section) []types.ProjectEntry {
	blocks := splitEntryBlocks(section.Body(), x.dates.HasRange)

	entries := make([]types.ProjectEntry, 0, len(blocks))
	for _, block := range blocks {
		if entry, ok := x.extractEntry(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (x *ProjectExtractor) extractEntry(block []types.Line) (types.ProjectEntry, bool) {
	entry := types.ProjectEntry{Details: []string{}}

	for i, line := range block {
		text := line.Text
		if i == 0 {
			entry.Title = stripBullet(text)
			continue
		}
		if detail := stripBullet(text); detail != "" {
			entry.Details = append(entry.Details, detail)
		}
	}

	for _, line := range block {
		if m := urlRE.FindString(line.Text); m != "" {
			u := strings.TrimRight(m, ".,;)")
			entry.URL = &u
			break
		}
	}

	if entry.Title == "" {
		return entry, false
	}
	return entry, true
}
