package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"resume-parser-go/internal/types"
)

// boundMatcher 单个日期模式：正则加对应的解析函数
// 按固定顺序逐个尝试，第一个命中的生效
type boundMatcher struct {
	re      *regexp.Regexp
	resolve func(m []string) types.DateBound
}

// DateResolver 把异构的日期表达式解析为归一化的 DateRange
// 解析失败返回 Unknown 边界，从不报错：日期缺失是可表示的正常状态
type DateResolver struct {
	matchers []boundMatcher
	rangeRE  *regexp.Regexp
	singleRE *regexp.Regexp
}

// NewDateResolver 按配置构建日期解析器
func NewDateResolver(cfg Config) (*DateResolver, error) {
	months := cfg.monthNames()

	// 月份名按长度降序排列，保证 "sept" 在 "sep" 之前被尝试
	names := make([]string, 0, len(months))
	for name := range months {
		names = append(names, regexp.QuoteMeta(name))
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	monthAlt := strings.Join(names, "|")

	const year = `\b(?:19|20)\d{2}\b`

	r := &DateResolver{}

	// 固定顺序的模式列表：月份名+年份、数字月/年、纯年份、"至今"字面量
	specs := []struct {
		pattern string
		resolve func(m []string) types.DateBound
	}{
		{
			pattern: `(?i)^(` + monthAlt + `)\.?,?\s*(` + year + `)$`,
			resolve: func(m []string) types.DateBound {
				month := months[strings.ToLower(m[1])]
				y, _ := strconv.Atoi(m[2])
				return types.DateBound{Kind: types.BoundResolved, Year: y, Month: month}
			},
		},
		{
			pattern: `^(\d{1,2})\s*/\s*(` + year + `)$`,
			resolve: func(m []string) types.DateBound {
				month, _ := strconv.Atoi(m[1])
				y, _ := strconv.Atoi(m[2])
				if month < 1 || month > 12 {
					month = 0
				}
				return types.DateBound{Kind: types.BoundResolved, Year: y, Month: month}
			},
		},
		{
			pattern: `^(` + year + `)$`,
			resolve: func(m []string) types.DateBound {
				y, _ := strconv.Atoi(m[1])
				return types.DateBound{Kind: types.BoundResolved, Year: y, Month: 0}
			},
		},
		{
			pattern: `(?i)^(present|current|now)$`,
			resolve: func(m []string) types.DateBound {
				return types.PresentBound()
			},
		},
	}

	for _, spec := range specs {
		re, err := regexp.Compile(spec.pattern)
		if err != nil {
			return nil, fmt.Errorf("编译日期模式失败 %q: %w", spec.pattern, err)
		}
		r.matchers = append(r.matchers, boundMatcher{re: re, resolve: spec.resolve})
	}

	// 范围表达式：两个日期token夹一个范围分隔符（-、–、—、to）
	token := `(?:\b(?:` + monthAlt + `)\.?,?\s*` + year + `|\b\d{1,2}\s*/\s*` + year + `|` + year + `|\b(?:present|current|now)\b)`
	rangeRE, err := regexp.Compile(`(?i)(` + token + `)\s*(?:–|—|-|\bto\b)\s*(` + token + `)`)
	if err != nil {
		return nil, fmt.Errorf("编译日期范围模式失败: %w", err)
	}
	r.rangeRE = rangeRE

	singleRE, err := regexp.Compile(`(?i)(` + token + `)`)
	if err != nil {
		return nil, fmt.Errorf("编译单日期模式失败: %w", err)
	}
	r.singleRE = singleRE

	return r, nil
}

// ResolveBound 解析单侧日期表达式
// 无法识别时返回 Unknown 边界
func (r *DateResolver) ResolveBound(text string) types.DateBound {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.UnknownBound()
	}
	for _, matcher := range r.matchers {
		if m := matcher.re.FindStringSubmatch(text); m != nil {
			return matcher.resolve(m)
		}
	}
	return types.UnknownBound()
}

// FindRange 在文本中查找第一个日期范围表达式
// 返回归一化范围、匹配到的原始子串和是否命中
func (r *DateResolver) FindRange(text string) (types.DateRange, string, bool) {
	m := r.rangeRE.FindStringSubmatch(text)
	if m == nil {
		return types.UnknownRange(), "", false
	}
	rng := types.DateRange{
		Start: r.ResolveBound(m[1]),
		End:   r.ResolveBound(m[2]),
	}
	return normalizeRange(rng), m[0], true
}

// FindSingle 在文本中查找第一个单独的日期表达式（证书签发日期等）
func (r *DateResolver) FindSingle(text string) (types.DateBound, string, bool) {
	m := r.singleRE.FindStringSubmatch(text)
	if m == nil {
		return types.UnknownBound(), "", false
	}
	return r.ResolveBound(m[1]), m[0], true
}

// HasRange 判断文本是否包含日期范围表达式
func (r *DateResolver) HasRange(text string) bool {
	return r.rangeRE.MatchString(text)
}

// normalizeRange 维持 start <= end 不变量：两端都已解析且顺序颠倒时交换
func normalizeRange(rng types.DateRange) types.DateRange {
	if rng.Start.Kind != types.BoundResolved || rng.End.Kind != types.BoundResolved {
		return rng
	}
	if boundAfter(rng.Start, rng.End) {
		rng.Start, rng.End = rng.End, rng.Start
	}
	return rng
}

// boundAfter 判断 a 是否明确晚于 b，月份未知时只比较年份
func boundAfter(a, b types.DateBound) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	if a.Month > 0 && b.Month > 0 {
		return a.Month > b.Month
	}
	return false
}
