package engine

import (
	"strings"

	"resume-parser-go/internal/types"
)

// assemble 把各提取器的输出组装成最终的 ResumeRecord
// 所有数组字段初始化为空数组而非nil，输出形状保持稳定
func (e *Engine) assemble(doc types.RawDocument, sections []types.Section) *types.ResumeRecord {
	record := &types.ResumeRecord{
		Experience:     []types.ExperienceEntry{},
		Education:      []types.EducationEntry{},
		Skills:         *types.NewSkillSet(),
		Certifications: []types.CertificationEntry{},
		Projects:       []types.ProjectEntry{},
	}

	var contactLines []types.Line
	var summaryParts []string

	for _, section := range sections {
		switch section.Kind {
		case types.SectionUnclassified:
			contactLines = append(contactLines, section.Lines...)
		case types.SectionSummary:
			for _, line := range section.Body() {
				if line.Text != "" {
					summaryParts = append(summaryParts, line.Text)
				}
			}
		case types.SectionExperience:
			record.Experience = append(record.Experience, e.experience.Extract(section)...)
		case types.SectionEducation:
			record.Education = append(record.Education, e.education.Extract(section)...)
		case types.SectionSkills:
			e.skills.Extract(section, &record.Skills)
		case types.SectionCertifications:
			record.Certifications = append(record.Certifications, e.certifications.Extract(section)...)
		case types.SectionProjects:
			record.Projects = append(record.Projects, e.projects.Extract(section)...)
		}
	}

	// 没有未分类头部块时退化为整个文档，联系方式提取必须尽力而为
	if len(contactLines) == 0 {
		contactLines = doc.Lines
	}
	record.Contact = e.contact.Extract(contactLines)

	if len(summaryParts) > 0 {
		summary := strings.Join(summaryParts, "\n")
		record.Summary = &summary
	}

	record.Experience = dedupeExperience(record.Experience)

	return record
}

// experienceKey 经历去重键：组织、角色和日期范围完全一致视为同一段经历
type experienceKey struct {
	organization string
	role         string
	dates        types.DateRange
}

// dedupeExperience 合并重复的经历条目：要点列表按顺序拼接并去掉完全重复项
func dedupeExperience(entries []types.ExperienceEntry) []types.ExperienceEntry {
	out := make([]types.ExperienceEntry, 0, len(entries))
	index := make(map[experienceKey]int, len(entries))

	for _, entry := range entries {
		key := experienceKey{
			organization: entry.Organization,
			role:         entry.Role,
			dates:        entry.Dates,
		}
		if i, ok := index[key]; ok {
			out[i].Bullets = mergeBullets(out[i].Bullets, entry.Bullets)
			if out[i].Location == nil {
				out[i].Location = entry.Location
			}
			continue
		}
		index[key] = len(out)
		out = append(out, entry)
	}
	return out
}

// mergeBullets 顺序保留地合并要点，丢弃逐字重复项
func mergeBullets(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, bullet := range append(append([]string{}, a...), b...) {
		if seen[bullet] {
			continue
		}
		seen[bullet] = true
		out = append(out, bullet)
	}
	return out
}
