package engine

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	// 项目符号：-、•、▪、‣、*，或 "1." / "1)" 式编号
	bulletRE = regexp.MustCompile(`^\s*(?:[-•▪‣*]|\d+[.)])\s+`)

	// 组织/角色、学校/学位的表头分隔符：带空格的破折号，或竖线
	headerSepRE = regexp.MustCompile(`\s+[—–-]\s+|\s*\|\s*`)

	// "City, Region" 形状的地点行
	locationRE = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*,\s*[A-Za-z][A-Za-z .]*$`)
)

// splitEntryBlocks 把章节正文切成条目块
// 有空行时以空行为界；没有空行时，含日期范围的行开启新条目
// （当前块中已经有过日期行才切分，避免把表头和它下一行的日期拆开）
func splitEntryBlocks(lines []types.Line, hasDate func(string) bool) [][]types.Line {
	hasBlank := false
	for _, line := range lines {
		if line.Text == "" {
			hasBlank = true
			break
		}
	}

	var blocks [][]types.Line
	var current []types.Line
	currentHasDate := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
		}
		current = nil
		currentHasDate = false
	}

	for _, line := range lines {
		if hasBlank {
			if line.Text == "" {
				flush()
				continue
			}
		} else if hasDate(line.Text) && currentHasDate {
			flush()
		}
		if line.Text == "" {
			continue
		}
		current = append(current, line)
		if hasDate(line.Text) {
			currentHasDate = true
		}
	}
	flush()

	return blocks
}

// isBullet 判断是否为项目符号行
func isBullet(text string) bool {
	return bulletRE.MatchString(text)
}

// stripBullet 去掉行首项目符号
func stripBullet(text string) string {
	return strings.TrimSpace(bulletRE.ReplaceAllString(text, ""))
}

// splitHeader 按分隔符拆分表头行，返回去除空白后的非空片段
func splitHeader(header string) []string {
	parts := headerSepRE.Split(header, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// stripDateExpr 从表头行中去掉日期表达式及残留的分隔符
func stripDateExpr(header, dateExpr string) string {
	if dateExpr != "" {
		header = strings.Replace(header, dateExpr, "", 1)
	}
	return strings.Trim(header, " \t|,–—-")
}
