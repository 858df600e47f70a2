package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/types"
)

func skillsSection(texts ...string) types.Section {
	lines := []types.Line{{Text: "SKILLS"}}
	for _, text := range texts {
		lines = append(lines, types.Line{Text: text})
	}
	return types.Section{Kind: types.SectionSkills, Title: "SKILLS", Lines: lines}
}

func TestSkillsExtractDelimitersAndDedupe(t *testing.T) {
	x := NewSkillsExtractor()
	set := types.NewSkillSet()

	x.Extract(skillsSection("Python, Go; Rust | Go"), set)

	assert.Equal(t, []string{"Python", "Go", "Rust"}, set.List(),
		"忽略大小写去重，保留首次出现的大小写和顺序")
}

func TestSkillsExtractCaseInsensitiveFirstSeenCasing(t *testing.T) {
	x := NewSkillsExtractor()
	set := types.NewSkillSet()

	x.Extract(skillsSection("PostgreSQL, postgresql, POSTGRESQL"), set)

	assert.Equal(t, []string{"PostgreSQL"}, set.List(), "展示用首次出现的原始大小写")
}

func TestSkillsExtractBulletsAndMultipleLines(t *testing.T) {
	x := NewSkillsExtractor()
	set := types.NewSkillSet()

	x.Extract(skillsSection(
		"• Go • Python",
		"- Kubernetes, Docker",
		"Terraform",
	), set)

	assert.Equal(t, []string{"Go", "Python", "Kubernetes", "Docker", "Terraform"}, set.List())
}

func TestSkillsExtractEmptySection(t *testing.T) {
	x := NewSkillsExtractor()
	set := types.NewSkillSet()

	x.Extract(skillsSection(), set)
	assert.Zero(t, set.Len())

	x.Extract(skillsSection("", " , ; "), set)
	assert.Zero(t, set.Len(), "纯分隔符的行不应产出技能")
}
