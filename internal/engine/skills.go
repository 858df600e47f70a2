package engine

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// 技能分隔符：逗号、分号、竖线、项目符号
var skillDelimRE = regexp.MustCompile(`[,;|•·▪‣]`)

// SkillsExtractor 把技能章节当作扁平的token列表处理
// 忽略大小写去重，展示用首次出现的原始大小写，顺序为首次出现顺序
type SkillsExtractor struct{}

// NewSkillsExtractor 创建技能提取器
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract 提取技能集合
func (x *SkillsExtractor) Extract(section types.Section, set *types.SkillSet) {
	for _, line := range section.Body() {
		for _, token := range skillDelimRE.Split(line.Text, -1) {
			token = strings.Trim(token, " \t-*")
			if token == "" {
				continue
			}
			set.Add(token)
		}
	}
}
