package parser

import (
	"regexp"
	"unicode/utf8"

	"github.com/riverfjs/articlemark/internal/types"
)

// matcher 对一次匹配（绝对偏移的 submatch 索引）做判断；
// 返回 false 时从匹配起点的下一个字符继续查找。
type matcher func(loc []int) (types.Token, bool)

// scanGaps 在每个空隙中执行 re，收集被接受的 token，本轮结束后统一占用
func (c *claims) scanGaps(re *regexp.Regexp, accept matcher) {
	found := make([]types.Token, 0)
	for _, g := range c.gaps() {
		found = append(found, c.scan(re, g, accept)...)
	}
	if len(found) > 0 {
		c.add(found...)
	}
}

func (c *claims) scan(re *regexp.Regexp, g span, accept matcher) []types.Token {
	var out []types.Token
	pos := g.start
	for pos < g.end {
		loc := re.FindStringSubmatchIndex(c.src[pos:g.end])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if tok, ok := accept(loc); ok {
			tok.Start, tok.End = loc[0], loc[1]
			tok.Raw = c.src[loc[0]:loc[1]]
			out = append(out, tok)
			if loc[1] > pos {
				pos = loc[1]
			} else {
				pos++
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(c.src[loc[0]:])
		if size < 1 {
			size = 1
		}
		pos = loc[0] + size
	}
	return out
}

// group 返回第 n 个分组的文本，未参与匹配时为空
func (c *claims) group(loc []int, n int) string {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return ""
	}
	return c.src[loc[2*n]:loc[2*n+1]]
}
