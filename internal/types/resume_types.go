package types

import "encoding/json"

// SectionKind 表示简历章节类型
type SectionKind string

const (
	// SectionUnclassified 未分类章节（第一个标题之前的头部/联系方式块）
	SectionUnclassified SectionKind = "UNCLASSIFIED"
	// SectionSummary 个人简介章节
	SectionSummary SectionKind = "SUMMARY"
	// SectionExperience 工作经历章节
	SectionExperience SectionKind = "EXPERIENCE"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "EDUCATION"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "SKILLS"
	// SectionCertifications 证书章节
	SectionCertifications SectionKind = "CERTIFICATIONS"
	// SectionProjects 项目经历章节
	SectionProjects SectionKind = "PROJECTS"
	// SectionOther 其他已识别标题章节（获奖、出版物等）
	SectionOther SectionKind = "OTHER"
)

// Line 一行归一化后的文本，带来源页码
type Line struct {
	Text string // 行内容（已归一化）
	Page int    // 来源页索引，从0开始
}

// RawDocument 归一化后的行序列，创建后不可变
type RawDocument struct {
	Lines []Line
}

// IsEmpty 判断文档是否为空
func (d RawDocument) IsEmpty() bool {
	return len(d.Lines) == 0
}

// Section 一个带标签的连续章节块
// 不变量：所有章节不重叠，按文档顺序覆盖整个 RawDocument，
// 每一行恰好属于一个章节。标题行（如果有）是 Lines 的第一行。
type Section struct {
	Kind  SectionKind
	Title string // 实际匹配到的标题行，未分类章节为空
	Lines []Line
}

// Body 返回章节正文行（跳过标题行本身）
func (s Section) Body() []Line {
	if s.Title != "" && len(s.Lines) > 0 {
		return s.Lines[1:]
	}
	return s.Lines
}

// BoundKind 日期边界的种类
type BoundKind string

const (
	// BoundResolved 已解析出(年,月)的边界
	BoundResolved BoundKind = "resolved"
	// BoundPresent "至今"哨兵值
	BoundPresent BoundKind = "present"
	// BoundUnknown 无法解析的边界，属于正常状态而非错误
	BoundUnknown BoundKind = "unknown"
)

// DateBound 日期范围的一个边界
// Month 为 1-12，0 表示月份未知（仅解析出年份）
type DateBound struct {
	Kind  BoundKind `json:"kind"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
}

// UnknownBound 返回未知边界
func UnknownBound() DateBound {
	return DateBound{Kind: BoundUnknown}
}

// PresentBound 返回"至今"边界
func PresentBound() DateBound {
	return DateBound{Kind: BoundPresent}
}

// DateRange 归一化的(起始,结束)日期对
// 不变量：两端都已解析时，start <= end
type DateRange struct {
	Start DateBound `json:"start"`
	End   DateBound `json:"end"`
}

// UnknownRange 返回两端均未知的日期范围
func UnknownRange() DateRange {
	return DateRange{Start: UnknownBound(), End: UnknownBound()}
}

// ContactInfo 联系方式，缺失字段为 nil（序列化为 null）
type ContactInfo struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	LinkedIn *string  `json:"linkedin"`
	GitHub   *string  `json:"github"`
	Links    []string `json:"links"` // 按归一化URL去重后的个人主页链接列表
}

// ExperienceEntry 一段工作经历
type ExperienceEntry struct {
	Organization string    `json:"organization"`
	Role         string    `json:"role"`
	Location     *string   `json:"location"`
	Dates        DateRange `json:"dates"`
	Bullets      []string  `json:"bullets"`
}

// EducationEntry 一段教育经历
type EducationEntry struct {
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	GPA         *string   `json:"gpa"`
	Dates       DateRange `json:"dates"`
}

// CertificationEntry 一条证书记录，只有单个签发日期而非范围
type CertificationEntry struct {
	Name   string    `json:"name"`
	Issuer *string   `json:"issuer"`
	Issued DateBound `json:"issued"`
}

// ProjectEntry 一个项目条目
type ProjectEntry struct {
	Title   string   `json:"title"`
	URL     *string  `json:"url"`
	Details []string `json:"details"`
}

// SkillSet 技能集合：保留首次出现的大小写和顺序，按小写形式判断成员关系
type SkillSet struct {
	ordered []string
	seen    map[string]bool
}

// NewSkillSet 创建空技能集合
func NewSkillSet() *SkillSet {
	return &SkillSet{seen: make(map[string]bool)}
}

// Add 添加技能，重复（忽略大小写）或空白时返回 false
func (s *SkillSet) Add(skill string) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := normalizeSkillKey(skill)
	if key == "" || s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.ordered = append(s.ordered, skill)
	return true
}

// Contains 判断技能是否已存在（忽略大小写）
func (s *SkillSet) Contains(skill string) bool {
	if s.seen == nil {
		return false
	}
	return s.seen[normalizeSkillKey(skill)]
}

// List 按首次出现顺序返回技能列表
func (s *SkillSet) List() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len 返回技能数量
func (s *SkillSet) Len() int {
	return len(s.ordered)
}

// MarshalJSON 序列化为普通字符串数组，空集合输出 [] 而非 null
func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s.ordered == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ordered)
}

// UnmarshalJSON 从字符串数组反序列化
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = SkillSet{seen: make(map[string]bool)}
	for _, item := range items {
		s.Add(item)
	}
	return nil
}

// ResumeRecord 解析引擎的最终输出，每个输入文档构建一次，返回后不可变
// 顶层键固定，缺失字段用 null 或空数组表示，从不省略键
type ResumeRecord struct {
	Contact        ContactInfo          `json:"contact"`
	Summary        *string              `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         SkillSet             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
	Projects       []ProjectEntry       `json:"projects"`
}

// ToJSON 序列化为JSON字节
func (r *ResumeRecord) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ToPrettyJSON 序列化为带缩进的JSON字节
func (r *ResumeRecord) ToPrettyJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalFrom 从JSON字节反序列化，覆盖接收者
func (r *ResumeRecord) UnmarshalFrom(data []byte) error {
	return json.Unmarshal(data, r)
}
