package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func projectSection(texts ...string) types.Section {
	lines := []types.Line{{Text: "PROJECTS"}}
	for _, text := range texts {
		lines = append(lines, types.Line{Text: text})
	}
	return types.Section{Kind: types.SectionProjects, Title: "PROJECTS", Lines: lines}
}

func TestProjectBasicEntries(t *testing.T) {
	x := NewProjectExtractor(newTestDateResolver(t))

	entries := x.Extract(projectSection(
		"Log Analyzer",
		"- Streaming log parser in Go",
		"- https://github.com/janedoe/loganalyzer",
		"",
		"Home Lab",
		"- Kubernetes cluster on spare hardware",
	))
	require.Len(t, entries, 2)

	assert.Equal(t, "Log Analyzer", entries[0].Title)
	require.NotNil(t, entries[0].URL)
	assert.Equal(t, "https://github.com/janedoe/loganalyzer", *entries[0].URL)
	assert.Equal(t, []string{
		"Streaming log parser in Go",
		"https://github.com/janedoe/loganalyzer",
	}, entries[0].Details)

	assert.Equal(t, "Home Lab", entries[1].Title)
	assert.Nil(t, entries[1].URL)
	assert.Equal(t, []string{"Kubernetes cluster on spare hardware"}, entries[1].Details)
}

func TestProjectTitleOnly(t *testing.T) {
	x := NewProjectExtractor(newTestDateResolver(t))

	entries := x.Extract(projectSection("Solo Project"))
	require.Len(t, entries, 1)
	assert.Equal(t, "Solo Project", entries[0].Title)
	assert.NotNil(t, entries[0].Details, "细节列表应是空数组而非nil")
	assert.Empty(t, entries[0].Details)
}

func TestProjectBulletTitleStripped(t *testing.T) {
	x := NewProjectExtractor(newTestDateResolver(t))

	entries := x.Extract(projectSection("- Weather Bot"))
	require.Len(t, entries, 1)
	assert.Equal(t, "Weather Bot", entries[0].Title)
}
