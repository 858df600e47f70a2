package types

import "strings"

// normalizeSkillKey 技能去重键：去除首尾空白并转小写
func normalizeSkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
