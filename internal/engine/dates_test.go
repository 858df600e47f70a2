package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func newTestDateResolver(t *testing.T) *DateResolver {
	t.Helper()
	r, err := NewDateResolver(DefaultConfig())
	require.NoError(t, err, "创建日期解析器不应返回错误")
	return r
}

func TestResolveBoundMonthYear(t *testing.T) {
	r := newTestDateResolver(t)

	cases := []struct {
		text  string
		year  int
		month int
	}{
		{"Jan 2020", 2020, 1},
		{"January 2020", 2020, 1},
		{"Sept 2019", 2019, 9},
		{"september 2019", 2019, 9},
		{"Dec. 2021", 2021, 12},
		{"May, 2018", 2018, 5},
	}
	for _, tc := range cases {
		bound := r.ResolveBound(tc.text)
		assert.Equal(t, types.BoundResolved, bound.Kind, "输入: %q", tc.text)
		assert.Equal(t, tc.year, bound.Year, "输入: %q", tc.text)
		assert.Equal(t, tc.month, bound.Month, "输入: %q", tc.text)
	}
}

func TestResolveBoundNumericMonth(t *testing.T) {
	r := newTestDateResolver(t)

	bound := r.ResolveBound("03/2020")
	assert.Equal(t, types.BoundResolved, bound.Kind)
	assert.Equal(t, 2020, bound.Year)
	assert.Equal(t, 3, bound.Month)

	// 非法月份数字退化为月份未知
	bound = r.ResolveBound("13/2020")
	assert.Equal(t, types.BoundResolved, bound.Kind)
	assert.Equal(t, 0, bound.Month, "超出1-12的月份应记为未知")
}

func TestResolveBoundYearOnly(t *testing.T) {
	r := newTestDateResolver(t)

	bound := r.ResolveBound("2019")
	assert.Equal(t, types.BoundResolved, bound.Kind)
	assert.Equal(t, 2019, bound.Year)
	assert.Equal(t, 0, bound.Month, "纯年份的月份为未知")
}

func TestResolveBoundPresent(t *testing.T) {
	r := newTestDateResolver(t)

	for _, text := range []string{"Present", "present", "Current", "now"} {
		bound := r.ResolveBound(text)
		assert.Equal(t, types.BoundPresent, bound.Kind, "输入: %q", text)
	}
}

func TestResolveBoundUnknown(t *testing.T) {
	r := newTestDateResolver(t)

	for _, text := range []string{"", "soon", "circa 1850", "N/A"} {
		bound := r.ResolveBound(text)
		assert.Equal(t, types.BoundUnknown, bound.Kind,
			"无法识别的表达式应返回未知而非报错，输入: %q", text)
	}
}

func TestFindRangeYearToYear(t *testing.T) {
	r := newTestDateResolver(t)

	rng, matched, ok := r.FindRange("2019-2021")
	require.True(t, ok)
	assert.Equal(t, "2019-2021", matched)
	assert.Equal(t, types.DateBound{Kind: types.BoundResolved, Year: 2019}, rng.Start)
	assert.Equal(t, types.DateBound{Kind: types.BoundResolved, Year: 2021}, rng.End)
}

func TestFindRangeVariants(t *testing.T) {
	r := newTestDateResolver(t)

	cases := []struct {
		text  string
		start types.DateBound
		end   types.DateBound
	}{
		{
			"Jan 2020 - Present",
			types.DateBound{Kind: types.BoundResolved, Year: 2020, Month: 1},
			types.PresentBound(),
		},
		{
			"September 2019 – May 2023",
			types.DateBound{Kind: types.BoundResolved, Year: 2019, Month: 9},
			types.DateBound{Kind: types.BoundResolved, Year: 2023, Month: 5},
		},
		{
			"03/2020 to 11/2022",
			types.DateBound{Kind: types.BoundResolved, Year: 2020, Month: 3},
			types.DateBound{Kind: types.BoundResolved, Year: 2022, Month: 11},
		},
		{
			"2018 — current",
			types.DateBound{Kind: types.BoundResolved, Year: 2018},
			types.PresentBound(),
		},
	}
	for _, tc := range cases {
		rng, _, ok := r.FindRange(tc.text)
		require.True(t, ok, "输入: %q", tc.text)
		assert.Equal(t, tc.start, rng.Start, "输入: %q", tc.text)
		assert.Equal(t, tc.end, rng.End, "输入: %q", tc.text)
	}
}

func TestFindRangeInsideLine(t *testing.T) {
	r := newTestDateResolver(t)

	rng, matched, ok := r.FindRange("Acme Corp – Engineer | Jan 2020 - Present")
	require.True(t, ok, "应在整行文本中定位日期范围")
	assert.Equal(t, "Jan 2020 - Present", matched)
	assert.Equal(t, 2020, rng.Start.Year)
	assert.Equal(t, types.BoundPresent, rng.End.Kind)
}

func TestFindRangeReversedBoundsSwapped(t *testing.T) {
	r := newTestDateResolver(t)

	rng, _, ok := r.FindRange("2021 - 2019")
	require.True(t, ok)
	assert.Equal(t, 2019, rng.Start.Year, "两端都已解析且顺序颠倒时应交换")
	assert.Equal(t, 2021, rng.End.Year)

	rng, _, ok = r.FindRange("May 2020 - Jan 2020")
	require.True(t, ok)
	assert.Equal(t, 1, rng.Start.Month)
	assert.Equal(t, 5, rng.End.Month)
}

func TestFindRangeNoFalsePositives(t *testing.T) {
	r := newTestDateResolver(t)

	for _, text := range []string{
		"Currently working on big projects",
		"version 3.1-4.2 migration",
		"ISO 9001-27001 compliance",
		"trojan horse analysis",
	} {
		assert.False(t, r.HasRange(text), "不应误报日期范围，输入: %q", text)
	}
}

func TestFindSingle(t *testing.T) {
	r := newTestDateResolver(t)

	bound, matched, ok := r.FindSingle("AWS Certified, Amazon, Mar 2021")
	require.True(t, ok)
	assert.Equal(t, "Mar 2021", matched)
	assert.Equal(t, types.DateBound{Kind: types.BoundResolved, Year: 2021, Month: 3}, bound)

	_, _, ok = r.FindSingle("no dates here")
	assert.False(t, ok)
}

func TestCustomMonthNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomMonthNames = map[string]int{"janvier": 1, "décembre": 12}
	r, err := NewDateResolver(cfg)
	require.NoError(t, err)

	rng, _, ok := r.FindRange("janvier 2020 - décembre 2022")
	require.True(t, ok, "自定义月份名应参与范围识别")
	assert.Equal(t, 1, rng.Start.Month)
	assert.Equal(t, 12, rng.End.Month)
}
