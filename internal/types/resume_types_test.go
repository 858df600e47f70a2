package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSetAddAndDedupe(t *testing.T) {
	set := NewSkillSet()

	assert.True(t, set.Add("Go"))
	assert.False(t, set.Add("go"), "忽略大小写的重复项应被拒绝")
	assert.False(t, set.Add("GO"))
	assert.True(t, set.Add("Python"))
	assert.False(t, set.Add("  "), "空白技能应被拒绝")

	assert.Equal(t, []string{"Go", "Python"}, set.List(), "保留首次出现的大小写和顺序")
	assert.True(t, set.Contains("gO"))
	assert.False(t, set.Contains("Rust"))
	assert.Equal(t, 2, set.Len())
}

func TestSkillSetMarshalJSON(t *testing.T) {
	set := NewSkillSet()
	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "空集合序列化为空数组而非null")

	set.Add("Go")
	set.Add("Python")
	data, err = json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `["Go","Python"]`, string(data))
}

func TestSkillSetUnmarshalJSON(t *testing.T) {
	var set SkillSet
	require.NoError(t, json.Unmarshal([]byte(`["Go","go","Rust"]`), &set))
	assert.Equal(t, []string{"Go", "Rust"}, set.List(), "反序列化时同样去重")
}

func TestResumeRecordJSONShapeStable(t *testing.T) {
	record := ResumeRecord{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         *NewSkillSet(),
		Certifications: []CertificationEntry{},
		Projects:       []ProjectEntry{},
	}
	data, err := record.ToJSON()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	// 顶层键固定，缺失值是null或空数组，键永不省略
	for _, key := range []string{
		"contact", "summary", "experience", "education",
		"skills", "certifications", "projects",
	} {
		assert.Contains(t, decoded, key, "顶层键 %q 不能省略", key)
	}
	assert.Equal(t, "null", string(decoded["summary"]))
	assert.Equal(t, "[]", string(decoded["experience"]))
	assert.Equal(t, "[]", string(decoded["skills"]))

	var contact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["contact"], &contact))
	assert.Equal(t, "null", string(contact["name"]))
	assert.Equal(t, "null", string(contact["email"]))
}

func TestResumeRecordJSONRoundTrip(t *testing.T) {
	name := "Jane Doe"
	record := ResumeRecord{
		Contact: ContactInfo{Name: &name, Links: []string{"https://janedoe.dev"}},
		Experience: []ExperienceEntry{{
			Organization: "Acme Corp",
			Role:         "Engineer",
			Dates: DateRange{
				Start: DateBound{Kind: BoundResolved, Year: 2020, Month: 1},
				End:   PresentBound(),
			},
			Bullets: []string{"Built pipelines"},
		}},
		Education:      []EducationEntry{},
		Skills:         *NewSkillSet(),
		Certifications: []CertificationEntry{},
		Projects:       []ProjectEntry{},
	}
	record.Skills.Add("Go")

	data, err := record.ToJSON()
	require.NoError(t, err)

	var back ResumeRecord
	require.NoError(t, back.UnmarshalFrom(data))
	require.NotNil(t, back.Contact.Name)
	assert.Equal(t, "Jane Doe", *back.Contact.Name)
	require.Len(t, back.Experience, 1)
	assert.Equal(t, record.Experience[0].Dates, back.Experience[0].Dates)
	assert.Equal(t, []string{"Go"}, back.Skills.List())
}

func TestSectionBody(t *testing.T) {
	section := Section{
		Kind:  SectionSkills,
		Title: "SKILLS",
		Lines: []Line{{Text: "SKILLS"}, {Text: "Go"}},
	}
	body := section.Body()
	require.Len(t, body, 1, "Body应跳过标题行")
	assert.Equal(t, "Go", body[0].Text)

	unclassified := Section{Kind: SectionUnclassified, Lines: []Line{{Text: "Jane"}}}
	assert.Len(t, unclassified.Body(), 1, "无标题章节的Body是全部行")
}
