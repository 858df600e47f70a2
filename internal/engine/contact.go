package engine

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"resume-parser-go/internal/types"
)

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRE = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	urlRE   = regexp.MustCompile(`(?i)https?://[^\s|]+|(?:www\.)?(?:linkedin\.com|github\.com)/[A-Za-z0-9/_.%-]+`)

	linkedinRE = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9/_%-]+`)
	githubRE   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_.-]+`)
)

// ContactExtractor 从未分类章节（简历头部）提取联系方式
// 所有字段都是尽力而为：单值字段多个候选时第一个命中者胜出，
// 没有命中则保持 nil，缺失不是错误
type ContactExtractor struct {
	cfg      Config
	detector HeadingDetector
}

// NewContactExtractor 创建联系方式提取器
// detector 用于把章节标题行排除出姓名候选
func NewContactExtractor(cfg Config, detector HeadingDetector) *ContactExtractor {
	return &ContactExtractor{cfg: cfg.withDefaults(), detector: detector}
}

// Extract 提取联系方式
func (x *ContactExtractor) Extract(lines []types.Line) types.ContactInfo {
	info := types.ContactInfo{Links: []string{}}

	for _, line := range lines {
		if line.Text == "" {
			continue
		}
		if info.Email == nil {
			if m := emailRE.FindString(line.Text); m != "" {
				info.Email = &m
			}
		}
		if info.Phone == nil {
			// 先排除邮箱和URL，避免把其中的数字串误认成电话
			scrubbed := emailRE.ReplaceAllString(line.Text, "")
			scrubbed = urlRE.ReplaceAllString(scrubbed, "")
			if m := phoneRE.FindString(scrubbed); m != "" {
				phone := x.normalizePhone(m)
				info.Phone = &phone
			}
		}
		for _, u := range urlRE.FindAllString(line.Text, -1) {
			x.addLink(&info, u)
		}
	}

	if name := x.guessName(lines); name != "" {
		info.Name = &name
	}

	return info
}

// normalizePhone 用电话号码库校验并格式化候选号码
// 库无法解析时保留原始匹配文本，提取失误好过丢数据
func (x *ContactExtractor) normalizePhone(raw string) string {
	num, err := phonenumbers.Parse(raw, x.cfg.DefaultPhoneRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return strings.TrimSpace(raw)
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// addLink 记录一个链接，按归一化URL去重，LinkedIn和GitHub单独拆出
func (x *ContactExtractor) addLink(info *types.ContactInfo, rawURL string) {
	u := strings.TrimRight(rawURL, ".,;)")
	key := normalizeURLKey(u)
	for _, existing := range info.Links {
		if normalizeURLKey(existing) == key {
			return
		}
	}
	info.Links = append(info.Links, u)

	if info.LinkedIn == nil && linkedinRE.MatchString(u) {
		info.LinkedIn = &info.Links[len(info.Links)-1]
	}
	if info.GitHub == nil && githubRE.MatchString(u) {
		info.GitHub = &info.Links[len(info.Links)-1]
	}
}

// normalizeURLKey 链接去重键：去掉协议、www前缀和尾部斜杠，统一小写
func normalizeURLKey(u string) string {
	key := strings.ToLower(u)
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	key = strings.TrimPrefix(key, "www.")
	return strings.TrimRight(key, "/")
}

// guessName 姓名启发式：头部前几个非空行中，第一个不含联系方式、
// 词数不超限、且是标题式大小写（或全大写）的行
func (x *ContactExtractor) guessName(lines []types.Line) string {
	candidates := 0
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		candidates++
		if candidates > 5 {
			break
		}
		if emailRE.MatchString(text) || phoneRE.MatchString(text) || urlRE.MatchString(text) {
			continue
		}
		if _, isHeading := x.detector.DetectHeading(text); isHeading {
			continue
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 || len(tokens) > x.cfg.MaxNameTokens {
			continue
		}
		if isTitleCasedOrUpper(tokens) {
			return text
		}
	}
	return ""
}

// isTitleCasedOrUpper 每个词以大写字母开头，或整行全大写
func isTitleCasedOrUpper(tokens []string) bool {
	for _, tok := range tokens {
		r := firstLetter(tok)
		if r == 0 {
			return false
		}
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return 0
}
