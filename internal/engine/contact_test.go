package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func newTestContactExtractor(t *testing.T) *ContactExtractor {
	t.Helper()
	cfg := DefaultConfig()
	detector, err := NewKeywordHeadingDetector(cfg)
	require.NoError(t, err)
	return NewContactExtractor(cfg, detector)
}

func linesOf(texts ...string) []types.Line {
	lines := make([]types.Line, len(texts))
	for i, text := range texts {
		lines[i] = types.Line{Text: text}
	}
	return lines
}

func TestContactExtractBasic(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf(
		"Jane Doe",
		"jane@example.com | (555) 123-4567",
	))

	require.NotNil(t, info.Name)
	assert.Equal(t, "Jane Doe", *info.Name)
	require.NotNil(t, info.Email)
	assert.Equal(t, "jane@example.com", *info.Email)
	require.NotNil(t, info.Phone)
	assert.Equal(t, "(555) 123-4567", *info.Phone)
}

func TestContactFirstEmailWins(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf(
		"jane@example.com",
		"jane.work@corp.example.com",
	))
	require.NotNil(t, info.Email)
	assert.Equal(t, "jane@example.com", *info.Email, "单值字段多个候选时第一个命中者胜出")
}

func TestContactPhoneNotFromEmailOrURL(t *testing.T) {
	x := newTestContactExtractor(t)

	// 邮箱和URL里的数字串不应被当成电话
	info := x.Extract(linesOf(
		"user5551234567@example.com",
		"https://example.com/p/5551234567890",
	))
	assert.Nil(t, info.Phone, "邮箱或URL中的数字不应误认为电话")
}

func TestContactLinks(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf(
		"linkedin.com/in/janedoe | github.com/janedoe",
		"https://www.linkedin.com/in/janedoe",
		"https://janedoe.dev",
	))

	require.NotNil(t, info.LinkedIn)
	assert.Contains(t, *info.LinkedIn, "linkedin.com/in/janedoe")
	require.NotNil(t, info.GitHub)
	assert.Contains(t, *info.GitHub, "github.com/janedoe")

	// 协议和www前缀不同的同一链接只记一次
	assert.Len(t, info.Links, 3, "链接应按归一化URL去重")
}

func TestContactNameSkipsContactAndHeadingLines(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf(
		"jane@example.com",
		"SUMMARY",
		"Jane Doe",
	))
	require.NotNil(t, info.Name)
	assert.Equal(t, "Jane Doe", *info.Name, "联系方式行和章节标题行不参与姓名候选")
}

func TestContactNameRejectsLongAndLowercaseLines(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf(
		"a seasoned software engineer with ten years of experience",
	))
	assert.Nil(t, info.Name, "散文行不应被当成姓名")

	info = x.Extract(linesOf("JANE DOE"))
	require.NotNil(t, info.Name)
	assert.Equal(t, "JANE DOE", *info.Name, "全大写姓名行应被接受")
}

func TestContactAllFieldsMissing(t *testing.T) {
	x := newTestContactExtractor(t)

	info := x.Extract(linesOf("just some text without anything useful here at all"))
	assert.Nil(t, info.Name)
	assert.Nil(t, info.Email)
	assert.Nil(t, info.Phone)
	assert.Nil(t, info.LinkedIn)
	assert.Nil(t, info.GitHub)
	assert.NotNil(t, info.Links, "链接列表应是空数组而非nil")
	assert.Empty(t, info.Links)
}

func TestContactInternationalPhoneKeptWhenUnparseable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultPhoneRegion = "US"
	detector, err := NewKeywordHeadingDetector(cfg)
	require.NoError(t, err)
	x := NewContactExtractor(cfg, detector)

	info := x.Extract(linesOf("+1 555 123 4567"))
	require.NotNil(t, info.Phone)
	assert.NotEmpty(t, *info.Phone, "号码库能解析时输出格式化号码，不能解析时保留原文")
}
