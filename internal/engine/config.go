package engine

import (
	"strings"

	"resume-parser-go/internal/types"
)

// Config 解析引擎的配置
// 引擎构造后配置不可变，允许按地区或领域定制关键词和日期表
type Config struct {
	// 自定义章节关键词，按章节类型合并覆盖默认关键词表
	// 例如 {"SKILLS": ["stack", "toolbox"]}
	CustomSectionKeywords map[types.SectionKind][]string `yaml:"custom_section_keywords"`

	// 自定义月份名到月份数字的映射（本地化用），合并覆盖默认英文表
	CustomMonthNames map[string]int `yaml:"custom_month_names"`

	// 标题行的最大长度（按rune计），超出则不视为章节标题
	MaxHeadingRunes int `yaml:"max_heading_runes"`

	// 姓名启发式允许的最大词数
	MaxNameTokens int `yaml:"max_name_tokens"`

	// 电话号码解析的默认地区码，例如 "US"、"CN"
	DefaultPhoneRegion string `yaml:"default_phone_region"`
}

// DefaultConfig 返回内置的默认配置
func DefaultConfig() Config {
	return Config{
		MaxHeadingRunes:    48,
		MaxNameTokens:      5,
		DefaultPhoneRegion: "US",
	}
}

// withDefaults 填充零值字段
func (c Config) withDefaults() Config {
	if c.MaxHeadingRunes <= 0 {
		c.MaxHeadingRunes = 48
	}
	if c.MaxNameTokens <= 0 {
		c.MaxNameTokens = 5
	}
	if c.DefaultPhoneRegion == "" {
		c.DefaultPhoneRegion = "US"
	}
	return c
}

// sectionPriority 章节关键词的固定优先级顺序
// 一行同时匹配多个章节模式时，前面的类型胜出（确定性tie-break）
var sectionPriority = []types.SectionKind{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionCertifications,
	types.SectionProjects,
	types.SectionOther,
}

// defaultSectionKeywords 默认的章节标题关键词表
var defaultSectionKeywords = map[types.SectionKind][]string{
	types.SectionSummary: {
		"summary", "professional summary", "profile", "objective", "about me",
	},
	types.SectionExperience: {
		"experience", "work experience", "professional experience",
		"employment history", "work history",
	},
	types.SectionEducation: {
		"education", "academic background",
	},
	types.SectionSkills: {
		"skills", "technical skills", "skills & technologies", "core competencies",
	},
	types.SectionCertifications: {
		"certifications", "certificates", "licenses", "licenses & certifications",
	},
	types.SectionProjects: {
		"projects", "personal projects", "selected projects",
	},
	types.SectionOther: {
		"publications", "awards", "honors", "volunteering", "languages",
	},
}

// sectionKeywords 返回合并自定义项后的关键词表
func (c Config) sectionKeywords() map[types.SectionKind][]string {
	merged := make(map[types.SectionKind][]string, len(defaultSectionKeywords))
	for kind, words := range defaultSectionKeywords {
		merged[kind] = append([]string(nil), words...)
	}
	for kind, words := range c.CustomSectionKeywords {
		merged[kind] = append(merged[kind], words...)
	}
	return merged
}

// defaultMonthNames 默认的英文月份名表，缩写和全称都接受
var defaultMonthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// monthNames 返回合并自定义项后的月份名表，键统一为小写
func (c Config) monthNames() map[string]int {
	merged := make(map[string]int, len(defaultMonthNames))
	for name, m := range defaultMonthNames {
		merged[name] = m
	}
	for name, m := range c.CustomMonthNames {
		merged[strings.ToLower(name)] = m
	}
	return merged
}
