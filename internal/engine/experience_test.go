package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func experienceSection(texts ...string) types.Section {
	lines := []types.Line{{Text: "EXPERIENCE"}}
	for _, text := range texts {
		lines = append(lines, types.Line{Text: text})
	}
	return types.Section{Kind: types.SectionExperience, Title: "EXPERIENCE", Lines: lines}
}

func TestExperienceSingleEntryInlineDate(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer | Jan 2020 - Present",
		"- Built pipelines",
	))
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Acme Corp", entry.Organization)
	assert.Equal(t, "Engineer", entry.Role)
	assert.Equal(t, types.DateBound{Kind: types.BoundResolved, Year: 2020, Month: 1}, entry.Dates.Start)
	assert.Equal(t, types.BoundPresent, entry.Dates.End.Kind)
	assert.Equal(t, []string{"Built pipelines"}, entry.Bullets)
}

func TestExperienceRoleHintDecidesDirection(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	// 职位在前、公司在后时按角色关键词交换方向
	entries := x.Extract(experienceSection(
		"Senior Engineer – Acme Corp",
		"2019-2021",
		"- Shipped things",
	))
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Organization)
	assert.Equal(t, "Senior Engineer", entries[0].Role)
	assert.Equal(t, 2019, entries[0].Dates.Start.Year)
	assert.Equal(t, 2021, entries[0].Dates.End.Year)
}

func TestExperienceMultipleEntriesByBlankLine(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer",
		"Jan 2020 - Present",
		"- Built pipelines",
		"",
		"Globex – Analyst",
		"2017-2019",
		"- Analyzed data",
	))
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Organization)
	assert.Equal(t, "Globex", entries[1].Organization)
	assert.Equal(t, "Analyst", entries[1].Role)
}

func TestExperienceMultipleEntriesByDateLines(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	// 没有空行时，新的日期行开启新条目；
	// 但表头和它下一行的日期不能被拆开
	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer",
		"Jan 2020 - Present",
		"- Built pipelines",
		"Globex – Analyst | 2017-2019",
		"- Analyzed data",
	))
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Organization)
	assert.Equal(t, []string{"Built pipelines"}, entries[0].Bullets)
	assert.Equal(t, "Globex", entries[1].Organization)
	assert.Equal(t, []string{"Analyzed data"}, entries[1].Bullets)
}

func TestExperienceMissingDates(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer",
		"- Built pipelines",
	))
	require.Len(t, entries, 1)
	assert.Equal(t, types.UnknownRange(), entries[0].Dates, "缺失日期保留未知而非报错")
}

func TestExperienceLocation(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer",
		"Portland, Oregon",
		"Jan 2020 - Present",
		"- Built pipelines",
	))
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Location)
	assert.Equal(t, "Portland, Oregon", *entries[0].Location)
}

func TestExperienceNoBulletGlyphsFallback(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer",
		"Jan 2020 - Present",
		"Built pipelines end to end",
		"Maintained CI infrastructure",
	))
	require.Len(t, entries, 1)
	assert.Equal(t,
		[]string{"Built pipelines end to end", "Maintained CI infrastructure"},
		entries[0].Bullets,
		"没有项目符号时表头和日期之外的行按顺序当作要点")
}

func TestExperienceNumberedBullets(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection(
		"Acme Corp – Engineer | 2020-2021",
		"1. Did one thing",
		"2) Did another",
	))
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Did one thing", "Did another"}, entries[0].Bullets)
}

func TestExperienceEmptySection(t *testing.T) {
	x := NewExperienceExtractor(newTestDateResolver(t))

	entries := x.Extract(experienceSection())
	assert.NotNil(t, entries)
	assert.Empty(t, entries, "空章节产出空数组而非nil")
}
